package plan

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// Month is the resolved funding picture for one simulated month.
type Month struct {
	FundingAmount decimal.Decimal
	Allocations   map[string]decimal.Decimal

	// Requirement is only present in schedule mode. It is resolved against
	// the debts' configured balances; the simulator recomputes minimums
	// against mid-run balances on its own every month.
	Requirement *Requirement
}

// OverBudget reports whether the month's requirements exceed its funding.
func (m Month) OverBudget() bool {
	return m.Requirement != nil && m.Requirement.OverBudget
}

// Provider maps a 1-based month index to its funding picture.
type Provider func(month int) Month

// NewProvider builds a Provider from a funding configuration.
//
// Fixed mode yields the constant amount every month with no required
// breakdown. Schedule mode resolves each requested month against the current
// debt minimums; a month with no explicit row is governed by the nearest
// earlier row, so the greatest row repeats indefinitely beyond the explicit
// horizon. Months before the first row have zero funding.
func NewProvider(cfg domain.FundingConfig, debts []domain.AnnotatedDebt) Provider {
	if cfg.Mode != domain.FundingSchedule {
		amount := cfg.FixedAmount
		return func(int) Month {
			return Month{FundingAmount: amount}
		}
	}

	rows := make([]domain.ScheduleRow, len(cfg.Schedule))
	copy(rows, cfg.Schedule)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return func(month int) Month {
		row, ok := rowFor(rows, month)
		if !ok {
			req := Resolve(debts, decimal.Zero, nil)
			return Month{FundingAmount: decimal.Zero, Requirement: &req}
		}
		req := Resolve(debts, row.Amount, row.Allocations)
		return Month{
			FundingAmount: row.Amount,
			Allocations:   row.Allocations,
			Requirement:   &req,
		}
	}
}

// rowFor returns the row governing the given month: the explicit row if one
// exists, otherwise the nearest earlier one.
func rowFor(rows []domain.ScheduleRow, month int) (domain.ScheduleRow, bool) {
	var governing domain.ScheduleRow
	found := false
	for _, r := range rows {
		if r.Month > month {
			break
		}
		governing = r
		found = true
	}
	return governing, found
}
