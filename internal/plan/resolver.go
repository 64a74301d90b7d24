// Package plan resolves per-month funding requirements and abstracts the two
// funding modes behind a single month-indexed provider.
package plan

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// overBudgetEpsilon absorbs rounding noise when comparing a required sum
// against a funding amount.
var overBudgetEpsilon = decimal.New(1, -6)

// Requirement is the resolved payment obligation for one month.
type Requirement struct {
	// Required maps debt id to max(minimum payment, user allocation),
	// over debts with positive balance only.
	Required    map[string]decimal.Decimal `json:"required"`
	RequiredSum decimal.Decimal            `json:"requiredSum"`
	OverBudget  bool                       `json:"overBudget"`
	Unassigned  decimal.Decimal            `json:"unassigned"`
}

// Resolve computes the required payment per debt for a month funded with
// amount and the given allocation map. An absent or zero allocation means
// "pay the minimum"; a positive allocation is a total payment inclusive of
// the minimum and can only raise the requirement. Pure; the simulator reuses
// it every month and the UI layer uses it for the month-1 preview.
func Resolve(debts []domain.AnnotatedDebt, amount decimal.Decimal, allocations map[string]decimal.Decimal) Requirement {
	req := Requirement{
		Required:    make(map[string]decimal.Decimal, len(debts)),
		RequiredSum: decimal.Zero,
	}

	for _, d := range debts {
		if !d.Balance.GreaterThan(decimal.Zero) {
			continue
		}
		required := d.MinimumPayment
		if alloc, ok := allocations[d.ID]; ok && alloc.GreaterThan(required) {
			required = alloc
		}
		required = domain.RoundMoney(required)
		req.Required[d.ID] = required
		req.RequiredSum = domain.RoundMoney(req.RequiredSum.Add(required))
	}

	req.OverBudget = req.RequiredSum.GreaterThan(amount.Add(overBudgetEpsilon))
	req.Unassigned = decimal.Max(decimal.Zero, domain.RoundMoney(amount.Sub(req.RequiredSum)))
	return req
}
