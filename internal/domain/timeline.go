package domain

import (
	"github.com/shopspring/decimal"
)

// MaxSimulationMonths bounds every simulation run. A debt whose configured
// payment never exceeds its accruing interest would otherwise iterate
// forever; hitting the cap is reported as the horizon, not as an error.
const MaxSimulationMonths = 600

// TimelineEntry is one simulated month. Entries are append-only and ordered
// by month, starting at 1.
type TimelineEntry struct {
	Month         int             `json:"month"`
	FundingAmount decimal.Decimal `json:"fundingAmount"`

	// RequiredSum is the true sum of max(allocation, dynamic minimum) over
	// active debts this month. It may exceed FundingAmount when the month
	// is under-funded.
	RequiredSum decimal.Decimal `json:"requiredSum"`
	Unassigned  decimal.Decimal `json:"unassigned"`

	InterestAccrued decimal.Decimal `json:"interestAccrued"`
	InterestToDate  decimal.Decimal `json:"interestToDate"`

	RequiredPaid      decimal.Decimal `json:"requiredPaid"`
	DiscretionaryPaid decimal.Decimal `json:"discretionaryPaid"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`

	// TargetDebtID identifies the debt that received the single largest
	// total payment this month (ties resolved by encounter order); it is
	// reported for display only.
	TargetDebtID        string          `json:"targetDebtId,omitempty"`
	TargetDebtName      string          `json:"targetDebtName,omitempty"`
	TargetDiscretionary decimal.Decimal `json:"targetDiscretionary"`

	// Invalid marks a month whose required payments exceed its funding.
	// The simulator halts on the first such month; an invalid entry is
	// always the last one in its timeline.
	Invalid bool `json:"invalid,omitempty"`
}

// DebtOutcome summarizes one debt after a simulation run.
type DebtOutcome struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`

	// PayoffMonth is the month the balance first reached zero, or the
	// simulated horizon if it never did.
	PayoffMonth  int             `json:"payoffMonth"`
	InterestPaid decimal.Decimal `json:"interestPaid"`
}

// RunResult is the complete output of one strategy run.
type RunResult struct {
	Strategy Strategy `json:"strategy"`

	// MonthsToDebtFree is capped at MaxSimulationMonths; callers must
	// check RemainingBalance to distinguish payoff from a capped run.
	MonthsToDebtFree int             `json:"monthsToDebtFree"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Timeline         []TimelineEntry `json:"timeline"`
	Debts            []DebtOutcome   `json:"debts"`
}

// Invalid reports whether the run aborted on its first month because the
// required payments exceeded the funding amount.
func (r *RunResult) Invalid() bool {
	return len(r.Timeline) > 0 && r.Timeline[0].Invalid
}

// PaidOff reports whether every debt reached zero within the horizon.
func (r *RunResult) PaidOff() bool {
	return r.RemainingBalance.IsZero()
}
