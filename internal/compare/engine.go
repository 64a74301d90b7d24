// Package compare runs both payoff strategies and declares a winner.
package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/feasibility"
	"github.com/rgehrsitz/dpgo/internal/minimum"
	"github.com/rgehrsitz/dpgo/internal/plan"
	"github.com/rgehrsitz/dpgo/internal/simulation"
)

// ErrUnavailable is returned when a run aborts on its first month, so no
// meaningful comparison exists. Callers should treat it like a failed gate.
var ErrUnavailable = errors.New("comparison unavailable: first simulated month is over budget")

// ErrTooFewDebts is returned when fewer than two debts carry a balance.
var ErrTooFewDebts = errors.New("comparison requires at least two debts with a positive balance")

// Engine orchestrates the two strategy runs.
type Engine struct {
	Options simulation.Options
}

// NewEngine creates a comparison engine with the default month horizon.
func NewEngine() *Engine {
	return &Engine{Options: simulation.DefaultOptions()}
}

// Input is the full immutable input of one comparison.
type Input struct {
	Debts   []domain.Debt
	Funding domain.FundingConfig
	Goal    domain.Goal
	Income  decimal.Decimal
	Bills   decimal.Decimal
}

// Compare evaluates feasibility, runs both strategies and picks a winner for
// the stated goal. The two runs share no mutable state and execute
// concurrently; the month loop inside each run stays strictly sequential.
func (e *Engine) Compare(ctx context.Context, in Input) (*Comparison, error) {
	annotated := minimum.Annotate(in.Debts)

	assessment := feasibility.Evaluate(feasibility.Input{
		Income:  in.Income,
		Bills:   in.Bills,
		Debts:   annotated,
		Funding: in.Funding,
	})
	if assessment.AtRisk {
		return nil, fmt.Errorf("%w (status %s)", feasibility.ErrNotFeasible, assessment.Status)
	}

	withBalance := 0
	for _, d := range annotated {
		if d.Balance.GreaterThan(decimal.Zero) {
			withBalance++
		}
	}
	if withBalance < 2 {
		return nil, ErrTooFewDebts
	}

	provider := plan.NewProvider(in.Funding, annotated)
	scheduleMode := in.Funding.Mode == domain.FundingSchedule

	runs := make(chan *domain.RunResult, 2)
	for _, strategy := range []domain.Strategy{domain.StrategySnowball, domain.StrategyAvalanche} {
		go func(strategy domain.Strategy) {
			sim := simulation.NewSimulator(provider, scheduleMode)
			sim.Options = e.Options
			runs <- sim.Run(strategy, in.Debts)
		}(strategy)
	}

	comparison := &Comparison{Goal: in.Goal, Assessment: assessment}
	for i := 0; i < 2; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case run := <-runs:
			if run.Strategy == domain.StrategySnowball {
				comparison.Snowball = run
			} else {
				comparison.Avalanche = run
			}
		}
	}

	if comparison.Snowball.Invalid() || comparison.Avalanche.Invalid() {
		return nil, ErrUnavailable
	}

	comparison.MonthsDiff = abs(comparison.Snowball.MonthsToDebtFree - comparison.Avalanche.MonthsToDebtFree)
	comparison.InterestDiff = comparison.Snowball.TotalInterest.Sub(comparison.Avalanche.TotalInterest).Abs()
	comparison.Winner = pickWinner(in.Goal, comparison.Snowball, comparison.Avalanche)
	comparison.Recommendations = GenerateRecommendations(comparison)

	return comparison, nil
}

// pickWinner applies the goal. Ties always favor snowball: when the numbers
// are equal the easier-to-stick-with strategy wins.
func pickWinner(goal domain.Goal, snowball, avalanche *domain.RunResult) domain.Strategy {
	switch goal {
	case domain.GoalSpeed:
		if avalanche.MonthsToDebtFree < snowball.MonthsToDebtFree {
			return domain.StrategyAvalanche
		}
	case domain.GoalInterest:
		if avalanche.TotalInterest.LessThan(snowball.TotalInterest) {
			return domain.StrategyAvalanche
		}
	}
	// GoalStick and everything unrecognized resolves to snowball.
	return domain.StrategySnowball
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
