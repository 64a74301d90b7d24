package domain

import (
	"github.com/shopspring/decimal"
)

// FundingMode selects how monthly funding amounts are supplied.
type FundingMode string

const (
	FundingFixed    FundingMode = "fixed"    // one constant amount every month
	FundingSchedule FundingMode = "schedule" // explicit month-by-month rows
)

// ScheduleRow is one explicit month of a funding schedule. Rows are sparse:
// month numbers need not be contiguous, and the row with the greatest month
// governs every month beyond the explicit list.
//
// A debt absent from Allocations, or mapped to zero, means "pay the minimum,
// no override" - it is not an instruction to pay nothing.
type ScheduleRow struct {
	Month       int                        `yaml:"month" json:"month"`
	Amount      decimal.Decimal            `yaml:"amount" json:"amount"`
	Allocations map[string]decimal.Decimal `yaml:"allocations,omitempty" json:"allocations,omitempty"`
}

// FundingConfig is the complete funding configuration for a simulation.
type FundingConfig struct {
	Mode        FundingMode     `yaml:"mode" json:"mode"`
	FixedAmount decimal.Decimal `yaml:"fixed_amount,omitempty" json:"fixedAmount,omitempty"`
	Schedule    []ScheduleRow   `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}
