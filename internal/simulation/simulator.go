// Package simulation runs the monthly accrual-and-disbursement loop for one
// payoff strategy.
package simulation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/minimum"
	"github.com/rgehrsitz/dpgo/internal/plan"
)

// Options configures a simulation run.
type Options struct {
	MaxMonths int
}

// DefaultOptions returns the standard 600-month horizon.
func DefaultOptions() Options {
	return Options{MaxMonths: domain.MaxSimulationMonths}
}

// Simulator drives the monthly loop for a set of debts against a payment
// plan. One Run call owns its debt state exclusively; a Simulator may be
// reused for several runs, including concurrent ones.
type Simulator struct {
	Plan         plan.Provider
	ScheduleMode bool
	Options      Options
}

// NewSimulator creates a simulator over the given payment plan.
func NewSimulator(provider plan.Provider, scheduleMode bool) *Simulator {
	return &Simulator{
		Plan:         provider,
		ScheduleMode: scheduleMode,
		Options:      DefaultOptions(),
	}
}

// debtState is the mutable per-run state of one debt. It is never shared
// across runs, and it stops mutating once the balance reaches zero.
type debtState struct {
	debt         domain.Debt
	monthlyRate  decimal.Decimal
	balance      decimal.Decimal
	interestPaid decimal.Decimal
	payoffMonth  int
}

func (st *debtState) active() bool {
	return st.balance.GreaterThan(decimal.Zero)
}

// Run simulates the given strategy to completion: full payoff, the month
// horizon, or an over-budget abort, whichever comes first.
func (s *Simulator) Run(strategy domain.Strategy, debts []domain.Debt) *domain.RunResult {
	maxMonths := s.Options.MaxMonths
	if maxMonths <= 0 {
		maxMonths = domain.MaxSimulationMonths
	}

	states := make([]*debtState, 0, len(debts))
	for _, d := range debts {
		balance := d.Balance
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		states = append(states, &debtState{
			debt:        d,
			monthlyRate: d.MonthlyRate(),
			balance:     domain.RoundMoney(balance),
		})
	}

	result := &domain.RunResult{Strategy: strategy}
	interestToDate := decimal.Zero

	for month := 1; month <= maxMonths; month++ {
		if allPaid(states) {
			break
		}

		pm := s.Plan(month)
		if pm.OverBudget() {
			// Required payments exceed funding: record a terminal
			// invalid month and halt. No interest accrues and no
			// payment is applied.
			result.Timeline = append(result.Timeline, domain.TimelineEntry{
				Month:          month,
				FundingAmount:  pm.FundingAmount,
				RequiredSum:    pm.Requirement.RequiredSum,
				Unassigned:     decimal.Zero,
				InterestToDate: interestToDate,
				TotalBalance:   totalBalance(states),
				Invalid:        true,
			})
			break
		}

		// Interest accrual on every open balance.
		monthInterest := decimal.Zero
		for _, st := range states {
			if !st.active() {
				continue
			}
			interest := domain.RoundMoney(st.balance.Mul(st.monthlyRate))
			st.balance = domain.RoundMoney(st.balance.Add(interest))
			st.interestPaid = domain.RoundMoney(st.interestPaid.Add(interest))
			monthInterest = domain.RoundMoney(monthInterest.Add(interest))
		}
		interestToDate = domain.RoundMoney(interestToDate.Add(monthInterest))

		// Minimums float with the balance: recompute from the
		// post-accrual balances, not the configured ones.
		dynamicMin := make(map[string]decimal.Decimal, len(states))
		for _, st := range states {
			if st.active() {
				dynamicMin[st.debt.ID] = minimum.Effective(st.debt, st.balance)
			}
		}

		remaining := pm.FundingAmount
		requiredOwed := decimal.Zero
		requiredPaid := decimal.Zero
		paidByDebt := make(map[string]decimal.Decimal, len(states))

		// Required disbursement: allocation-or-minimum per debt, capped
		// by the balance and by whatever funding is left.
		for _, st := range states {
			if !st.active() {
				continue
			}
			intended := dynamicMin[st.debt.ID]
			if s.ScheduleMode {
				if alloc, ok := pm.Allocations[st.debt.ID]; ok && alloc.GreaterThan(intended) {
					intended = alloc
				}
			}
			intended = domain.RoundMoney(intended)
			requiredOwed = domain.RoundMoney(requiredOwed.Add(intended))

			pay := decimal.Min(intended, st.balance, remaining)
			if !pay.GreaterThan(decimal.Zero) {
				continue
			}
			s.applyPayment(st, pay, month)
			remaining = domain.RoundMoney(remaining.Sub(pay))
			requiredPaid = domain.RoundMoney(requiredPaid.Add(pay))
			paidByDebt[st.debt.ID] = pay
		}

		// Discretionary disbursement: route the remainder at one target
		// at a time. Each iteration either retires a debt or exhausts
		// the funding, so the loop is bounded by the debt count.
		discretionaryPaid := decimal.Zero
		discByDebt := make(map[string]decimal.Decimal, len(states))
		for i := 0; i < len(states); i++ {
			if !remaining.GreaterThan(domain.PaidEpsilon) {
				break
			}
			target := pickTarget(states, strategy)
			if target == nil {
				break
			}
			pay := decimal.Min(target.balance, remaining)
			s.applyPayment(target, pay, month)
			remaining = domain.RoundMoney(remaining.Sub(pay))
			discretionaryPaid = domain.RoundMoney(discretionaryPaid.Add(pay))
			id := target.debt.ID
			paidByDebt[id] = domain.RoundMoney(paidByDebt[id].Add(pay))
			discByDebt[id] = domain.RoundMoney(discByDebt[id].Add(pay))
		}

		entry := domain.TimelineEntry{
			Month:             month,
			FundingAmount:     pm.FundingAmount,
			RequiredSum:       requiredOwed,
			Unassigned:        decimal.Max(decimal.Zero, domain.RoundMoney(pm.FundingAmount.Sub(requiredOwed))),
			InterestAccrued:   monthInterest,
			InterestToDate:    interestToDate,
			RequiredPaid:      requiredPaid,
			DiscretionaryPaid: discretionaryPaid,
			TotalBalance:      totalBalance(states),
		}

		// Reported target: the debt that received the largest total
		// payment this month, ties resolved by encounter order.
		best := decimal.Zero
		for _, st := range states {
			paid, ok := paidByDebt[st.debt.ID]
			if ok && paid.GreaterThan(best) {
				best = paid
				entry.TargetDebtID = st.debt.ID
				entry.TargetDebtName = st.debt.Name
				entry.TargetDiscretionary = discByDebt[st.debt.ID]
			}
		}

		result.Timeline = append(result.Timeline, entry)
	}

	result.MonthsToDebtFree = len(result.Timeline)
	result.TotalInterest = interestToDate
	result.RemainingBalance = totalBalance(states)

	for _, st := range states {
		payoff := st.payoffMonth
		if payoff == 0 {
			payoff = result.MonthsToDebtFree
		}
		result.Debts = append(result.Debts, domain.DebtOutcome{
			ID:                st.debt.ID,
			Name:              st.debt.Name,
			AnnualRatePercent: st.debt.AnnualRatePercent,
			PayoffMonth:       payoff,
			InterestPaid:      st.interestPaid,
		})
	}

	return result
}

// applyPayment reduces a debt's balance and records the payoff month the
// first time the balance crosses to zero.
func (s *Simulator) applyPayment(st *debtState, pay decimal.Decimal, month int) {
	st.balance = domain.RoundMoney(st.balance.Sub(pay))
	if domain.IsPaid(st.balance) {
		st.balance = decimal.Zero
		if st.payoffMonth == 0 {
			st.payoffMonth = month
		}
	}
}

// pickTarget selects the next discretionary target among active debts.
// Snowball orders by ascending balance with descending rate breaking ties;
// avalanche orders by descending rate with ascending balance breaking ties.
func pickTarget(states []*debtState, strategy domain.Strategy) *debtState {
	active := make([]*debtState, 0, len(states))
	for _, st := range states {
		if st.active() {
			active = append(active, st)
		}
	}
	if len(active) == 0 {
		return nil
	}

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(active, func(i, j int) bool {
			if active[i].balance.Equal(active[j].balance) {
				return active[i].debt.AnnualRatePercent.GreaterThan(active[j].debt.AnnualRatePercent)
			}
			return active[i].balance.LessThan(active[j].balance)
		})
	default: // avalanche
		sort.SliceStable(active, func(i, j int) bool {
			if active[i].debt.AnnualRatePercent.Equal(active[j].debt.AnnualRatePercent) {
				return active[i].balance.LessThan(active[j].balance)
			}
			return active[i].debt.AnnualRatePercent.GreaterThan(active[j].debt.AnnualRatePercent)
		})
	}
	return active[0]
}

func allPaid(states []*debtState) bool {
	for _, st := range states {
		if st.active() {
			return false
		}
	}
	return true
}

func totalBalance(states []*debtState) decimal.Decimal {
	total := decimal.Zero
	for _, st := range states {
		total = domain.RoundMoney(total.Add(st.balance))
	}
	return total
}
