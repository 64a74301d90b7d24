package minimum

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestEstimate_Heuristics(t *testing.T) {
	tests := []struct {
		name     string
		debtType domain.DebtType
		balance  string
		rate     string
		want     string
	}{
		{"credit card floor wins", domain.DebtTypeCreditCard, "1000", "0", "25"},
		{"credit card interest plus 1%", domain.DebtTypeCreditCard, "10000", "24", "300"},
		{"credit card 2% when rate tiny", domain.DebtTypeCreditCard, "10000", "1", "200"},
		{"line of credit interest only", domain.DebtTypeLineOfCredit, "10000", "12", "100"},
		{"line of credit floor", domain.DebtTypeLineOfCredit, "1000", "1", "25"},
		{"loan 36 month tail", domain.DebtTypeLoan, "3600", "0", "100"},
		{"loan with interest", domain.DebtTypeLoan, "6000", "7.99", "206.62"},
		{"other type", domain.DebtTypeOther, "10000", "12", "150"},
		{"other floor", domain.DebtTypeOther, "1000", "0", "25"},
		{"unrecognized type falls through", domain.DebtType("heloc"), "10000", "12", "150"},
		{"zero balance", domain.DebtTypeCreditCard, "0", "29.99", "25"},
		{"negative balance clamps", domain.DebtTypeLoan, "-5000", "10", "25"},
		{"negative rate clamps", domain.DebtTypeLoan, "3600", "-4", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.debtType, d(tt.balance), d(tt.rate))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEstimate_MonotonicInBalance(t *testing.T) {
	for _, debtType := range []domain.DebtType{
		domain.DebtTypeCreditCard, domain.DebtTypeLoan, domain.DebtTypeLineOfCredit, domain.DebtTypeOther,
	} {
		prev := decimal.Zero
		for _, balance := range []string{"0", "100", "1000", "5000", "20000", "100000"} {
			got := Estimate(debtType, d(balance), d("15"))
			if got.LessThan(prev) {
				t.Errorf("%s: estimate decreased from %s to %s at balance %s", debtType, prev, got, balance)
			}
			prev = got
		}
	}
}

func TestEstimate_MonotonicInRate(t *testing.T) {
	prev := decimal.Zero
	for _, rate := range []string{"0", "5", "10", "20", "35"} {
		got := Estimate(domain.DebtTypeCreditCard, d("8000"), d(rate))
		if got.LessThan(prev) {
			t.Errorf("estimate decreased from %s to %s at rate %s", prev, got, rate)
		}
		prev = got
	}
}

func TestEffective_FloorOverrideOnlyRaises(t *testing.T) {
	debt := domain.Debt{
		ID:                "d1",
		Type:              domain.DebtTypeCreditCard,
		AnnualRatePercent: d("0"),
	}

	// Estimate for a 1000 balance at 0% is the universal floor of 25.
	debt.MinimumFloorEnabled = true
	debt.MinimumFloorAmount = d("75")
	assert.True(t, Effective(debt, d("1000")).Equal(d("75")), "override should raise the minimum")

	debt.MinimumFloorAmount = d("10")
	assert.True(t, Effective(debt, d("1000")).Equal(d("25")), "override must never lower the minimum")

	debt.MinimumFloorEnabled = false
	debt.MinimumFloorAmount = d("500")
	assert.True(t, Effective(debt, d("1000")).Equal(d("25")), "disabled override is ignored")
}

func TestAnnotate(t *testing.T) {
	debts := []domain.Debt{
		{ID: "cc", Type: domain.DebtTypeCreditCard, Balance: d("4000"), AnnualRatePercent: d("29.99")},
		{ID: "loan", Type: domain.DebtTypeLoan, Balance: d("6000"), AnnualRatePercent: d("7.99"),
			MinimumFloorEnabled: true, MinimumFloorAmount: d("250")},
	}

	annotated := Annotate(debts)

	assert.Len(t, annotated, 2)
	assert.True(t, annotated[0].EstimatedMinimum.Equal(d("139.97")))
	assert.True(t, annotated[0].MinimumPayment.Equal(d("139.97")))
	assert.True(t, annotated[1].EstimatedMinimum.Equal(d("206.62")))
	assert.True(t, annotated[1].MinimumPayment.Equal(d("250")), "floor override raises the effective minimum")

	assert.True(t, AggregateMinimums(annotated).Equal(d("389.97")))
}

func TestEstimate_RoundingIdempotent(t *testing.T) {
	got := Estimate(domain.DebtTypeLoan, d("6000"), d("7.99"))
	assert.True(t, domain.RoundMoney(got).Equal(got))
}
