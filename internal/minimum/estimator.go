// Package minimum estimates monthly minimum payments from debt attributes.
package minimum

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// UniversalFloor is the smallest minimum payment any debt type produces.
var UniversalFloor = decimal.NewFromInt(25)

var (
	twelve         = decimal.NewFromInt(12)
	hundred        = decimal.NewFromInt(100)
	pct2           = decimal.NewFromFloat(0.02)
	pct1           = decimal.NewFromFloat(0.01)
	pct1p5         = decimal.NewFromFloat(0.015)
	pctHalf        = decimal.NewFromFloat(0.005)
	loanTailMonths = decimal.NewFromInt(36)
)

// Estimate returns the estimated monthly minimum payment for a debt of the
// given type, balance and annual percentage rate. Negative inputs are
// clamped to zero. Unrecognized types take the default heuristic; there is
// no error path.
func Estimate(debtType domain.DebtType, balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	if annualRatePercent.IsNegative() {
		annualRatePercent = decimal.Zero
	}

	interestOnly := balance.Mul(annualRatePercent).Div(hundred).Div(twelve)

	var est decimal.Decimal
	switch debtType {
	case domain.DebtTypeCreditCard:
		est = decimal.Max(UniversalFloor, balance.Mul(pct2), interestOnly.Add(balance.Mul(pct1)))
	case domain.DebtTypeLineOfCredit:
		est = decimal.Max(UniversalFloor, interestOnly)
	case domain.DebtTypeLoan:
		// Interest plus a 36-month amortization tail.
		est = decimal.Max(UniversalFloor, interestOnly.Add(balance.Div(loanTailMonths)))
	default:
		est = decimal.Max(UniversalFloor, interestOnly.Add(balance.Mul(pctHalf)), balance.Mul(pct1p5))
	}

	return domain.RoundMoney(est)
}

// Effective returns the minimum payment used everywhere downstream: the
// estimate for the given balance, raised to the debt's floor override when
// one is enabled. The override can only raise the payment, never lower it.
func Effective(d domain.Debt, balance decimal.Decimal) decimal.Decimal {
	est := Estimate(d.Type, balance, d.AnnualRatePercent)
	if d.MinimumFloorEnabled && d.MinimumFloorAmount.GreaterThan(est) {
		return domain.RoundMoney(d.MinimumFloorAmount)
	}
	return est
}

// Annotate resolves the estimated and effective minimum for each debt at its
// currently configured balance.
func Annotate(debts []domain.Debt) []domain.AnnotatedDebt {
	annotated := make([]domain.AnnotatedDebt, 0, len(debts))
	for _, d := range debts {
		ad := domain.AnnotatedDebt{
			Debt:             d,
			EstimatedMinimum: Estimate(d.Type, d.Balance, d.AnnualRatePercent),
		}
		ad.MinimumPayment = Effective(d, d.Balance)
		annotated = append(annotated, ad)
	}
	return annotated
}

// AggregateMinimums sums the effective minimums of debts that still carry a
// balance.
func AggregateMinimums(debts []domain.AnnotatedDebt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Balance.GreaterThan(decimal.Zero) {
			total = domain.RoundMoney(total.Add(d.MinimumPayment))
		}
	}
	return total
}
