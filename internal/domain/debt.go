package domain

import (
	"github.com/shopspring/decimal"
)

// DebtType identifies which minimum-payment heuristic applies to a debt.
type DebtType string

const (
	DebtTypeCreditCard   DebtType = "credit_card"
	DebtTypeLoan         DebtType = "loan"
	DebtTypeLineOfCredit DebtType = "line_of_credit"
	DebtTypeOther        DebtType = "other"
)

// Known reports whether the type is one of the recognized variants.
// Unrecognized types are legal input; they take the default heuristic.
func (t DebtType) Known() bool {
	switch t {
	case DebtTypeCreditCard, DebtTypeLoan, DebtTypeLineOfCredit, DebtTypeOther:
		return true
	}
	return false
}

// Debt is a single debt as configured by the user. IDs are stable and
// unique for the lifetime of the debt; they are never reused after removal.
type Debt struct {
	ID                  string          `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	Type                DebtType        `yaml:"type" json:"type"`
	Balance             decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annualRatePercent"`
	MinimumFloorEnabled bool            `yaml:"minimum_floor_enabled,omitempty" json:"minimumFloorEnabled,omitempty"`
	MinimumFloorAmount  decimal.Decimal `yaml:"minimum_floor_amount,omitempty" json:"minimumFloorAmount,omitempty"`
}

// MonthlyRate converts the annual percentage rate to a flat monthly rate.
func (d Debt) MonthlyRate() decimal.Decimal {
	return d.AnnualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// AnnotatedDebt is a Debt plus its resolved minimum payment. It is derived
// state: recomputed whenever the debt or the estimator inputs change, never
// persisted on its own.
type AnnotatedDebt struct {
	Debt
	EstimatedMinimum decimal.Decimal `json:"estimatedMinimumPayment"`
	MinimumPayment   decimal.Decimal `json:"minimumPayment"`
}

// Strategy selects the discretionary-payment targeting rule.
type Strategy string

const (
	StrategySnowball  Strategy = "snowball"  // smallest balance first
	StrategyAvalanche Strategy = "avalanche" // highest rate first
)

// Goal states what the comparison should optimize for.
type Goal string

const (
	GoalSpeed    Goal = "speed"    // fewest months to debt free
	GoalInterest Goal = "interest" // least total interest paid
	GoalStick    Goal = "stick"    // easiest to stick with (always snowball)
)
