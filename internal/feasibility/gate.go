// Package feasibility classifies the overall financial situation and blocks
// simulation when income cannot sustain bills and minimums.
package feasibility

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/minimum"
	"github.com/rgehrsitz/dpgo/internal/plan"
)

// ErrNotFeasible is returned by callers that refuse to simulate an at-risk
// situation.
var ErrNotFeasible = errors.New("situation is at risk; simulation blocked")

// Status classifies the headroom between free cash and required minimums.
type Status string

const (
	StatusAtRisk     Status = "at_risk"
	StatusTight      Status = "tight"
	StatusOptimizing Status = "optimizing"
	StatusStable     Status = "stable"
)

var (
	tightBuffer      = decimal.NewFromInt(200)
	optimizingBuffer = decimal.NewFromInt(1500)
	optimizingCash   = decimal.NewFromInt(2000)
)

// Input is everything the gate looks at. Month-1 schedule feasibility only
// applies in schedule mode.
type Input struct {
	Income  decimal.Decimal
	Bills   decimal.Decimal
	Debts   []domain.AnnotatedDebt
	Funding domain.FundingConfig
}

// Assessment is the gate's verdict plus the figures a caller needs to show
// the user how to exit risk.
type Assessment struct {
	Status Status `json:"status"`
	AtRisk bool   `json:"isAtRisk"`

	FreeCash      decimal.Decimal `json:"freeCash"`
	MinimumsTotal decimal.Decimal `json:"minimumsTotal"`
	Buffer        decimal.Decimal `json:"buffer"`

	// BillsShortfall is how far income falls below bills, zero when it
	// covers them.
	BillsShortfall decimal.Decimal `json:"billsShortfall"`

	// IncomeRequired and PaymentRequired are the smallest income and
	// monthly payment that would exit risk.
	IncomeRequired  decimal.Decimal `json:"incomeRequired"`
	PaymentRequired decimal.Decimal `json:"paymentRequired"`

	// ScheduleInvalid marks a schedule whose month-1 allocations exceed
	// month-1 funding.
	ScheduleInvalid bool `json:"scheduleInvalid,omitempty"`

	// MonthOne is the resolved month-1 plan, present in schedule mode for
	// the UI preview.
	MonthOne *plan.Requirement `json:"monthOne,omitempty"`
}

// Evaluate runs the gate. Pure: it touches no state and never errs; an
// infeasible situation is data, not an exception.
func Evaluate(in Input) Assessment {
	minimums := minimum.AggregateMinimums(in.Debts)
	freeCash := domain.RoundMoney(in.Income.Sub(in.Bills))
	buffer := domain.RoundMoney(freeCash.Sub(minimums))

	a := Assessment{
		FreeCash:        freeCash,
		MinimumsTotal:   minimums,
		Buffer:          buffer,
		BillsShortfall:  decimal.Max(decimal.Zero, domain.RoundMoney(in.Bills.Sub(in.Income))),
		IncomeRequired:  domain.RoundMoney(in.Bills.Add(minimums)),
		PaymentRequired: minimums,
	}

	if freeCash.IsNegative() || buffer.IsNegative() {
		a.AtRisk = true
	}

	if in.Funding.Mode == domain.FundingSchedule {
		provider := plan.NewProvider(in.Funding, in.Debts)
		m1 := provider(1)
		a.MonthOne = m1.Requirement
		if m1.OverBudget() {
			a.AtRisk = true
			a.ScheduleInvalid = true
		}
		if m1.FundingAmount.LessThan(minimums) {
			a.AtRisk = true
		}
		if m1.Requirement != nil && m1.Requirement.RequiredSum.GreaterThan(a.PaymentRequired) {
			a.PaymentRequired = m1.Requirement.RequiredSum
		}
	}

	switch {
	case a.AtRisk:
		a.Status = StatusAtRisk
	case buffer.LessThan(tightBuffer):
		a.Status = StatusTight
	case buffer.GreaterThan(optimizingBuffer) && freeCash.GreaterThan(optimizingCash):
		a.Status = StatusOptimizing
	default:
		a.Status = StatusStable
	}

	return a
}
