package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/feasibility"
)

// Comparison holds both strategy runs and the goal-based verdict.
type Comparison struct {
	Goal   domain.Goal     `json:"goal"`
	Winner domain.Strategy `json:"winner"`

	Snowball  *domain.RunResult `json:"snowball"`
	Avalanche *domain.RunResult `json:"avalanche"`

	// Absolute differences between the two runs.
	MonthsDiff   int             `json:"monthsDiff"`
	InterestDiff decimal.Decimal `json:"interestDiff"`

	Assessment      feasibility.Assessment `json:"assessment"`
	Recommendations []string               `json:"recommendations"`
}

// WinnerResult returns the run belonging to the winning strategy.
func (c *Comparison) WinnerResult() *domain.RunResult {
	if c.Winner == domain.StrategyAvalanche {
		return c.Avalanche
	}
	return c.Snowball
}

// GenerateRecommendations creates display-ready notes from a comparison.
func GenerateRecommendations(c *Comparison) []string {
	recommendations := []string{}

	if c.MonthsDiff == 0 && c.InterestDiff.IsZero() {
		recommendations = append(recommendations,
			"Both strategies produce the same payoff: they target the same debts in the same order for this configuration")
		return recommendations
	}

	if c.MonthsDiff > 0 {
		faster := domain.StrategySnowball
		if c.Avalanche.MonthsToDebtFree < c.Snowball.MonthsToDebtFree {
			faster = domain.StrategyAvalanche
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest payoff: %s is debt free %d month(s) sooner", faster, c.MonthsDiff))
	}

	if !c.InterestDiff.IsZero() {
		cheaper := domain.StrategySnowball
		if c.Avalanche.TotalInterest.LessThan(c.Snowball.TotalInterest) {
			cheaper = domain.StrategyAvalanche
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Least interest: %s saves $%s in total interest", cheaper, c.InterestDiff.StringFixed(2)))
	}

	return recommendations
}
