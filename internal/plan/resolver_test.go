package plan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/minimum"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func testDebts() []domain.AnnotatedDebt {
	return minimum.Annotate([]domain.Debt{
		{ID: "cc", Name: "Visa", Type: domain.DebtTypeCreditCard, Balance: d("4000"), AnnualRatePercent: d("29.99")},
		{ID: "loan", Name: "Car", Type: domain.DebtTypeLoan, Balance: d("6000"), AnnualRatePercent: d("7.99")},
	})
}

func TestResolve_MinimumsOnly(t *testing.T) {
	req := Resolve(testDebts(), d("1500"), nil)

	// cc minimum 139.97, loan minimum 206.62
	assert.True(t, req.Required["cc"].Equal(d("139.97")))
	assert.True(t, req.Required["loan"].Equal(d("206.62")))
	assert.True(t, req.RequiredSum.Equal(d("346.59")))
	assert.False(t, req.OverBudget)
	assert.True(t, req.Unassigned.Equal(d("1153.41")))
}

func TestResolve_AllocationRaisesRequirement(t *testing.T) {
	req := Resolve(testDebts(), d("1500"), map[string]decimal.Decimal{
		"loan": d("300"),
		"cc":   d("50"), // below the minimum: must not lower it
	})

	assert.True(t, req.Required["cc"].Equal(d("139.97")))
	assert.True(t, req.Required["loan"].Equal(d("300")))
	assert.True(t, req.RequiredSum.Equal(d("439.97")))
	assert.True(t, req.Unassigned.Equal(d("1060.03")))
}

func TestResolve_OverBudget(t *testing.T) {
	req := Resolve(testDebts(), d("300"), nil)

	assert.True(t, req.OverBudget)
	assert.True(t, req.Unassigned.IsZero())
}

func TestResolve_ExactBudgetIsNotOverBudget(t *testing.T) {
	// The epsilon must absorb a requiredSum that equals the funding.
	req := Resolve(testDebts(), d("346.59"), nil)

	assert.False(t, req.OverBudget)
	assert.True(t, req.Unassigned.IsZero())
}

func TestResolve_SkipsPaidDebts(t *testing.T) {
	debts := testDebts()
	debts[0].Balance = decimal.Zero

	req := Resolve(debts, d("1000"), map[string]decimal.Decimal{"cc": d("500")})

	_, present := req.Required["cc"]
	assert.False(t, present, "paid-off debt must not appear in requirements")
	assert.True(t, req.RequiredSum.Equal(d("206.62")))
}

func TestResolve_SumInvariant(t *testing.T) {
	debts := testDebts()
	allocations := map[string]decimal.Decimal{"loan": d("400")}
	req := Resolve(debts, d("1000"), allocations)

	sum := decimal.Zero
	for _, debt := range debts {
		if !debt.Balance.GreaterThan(decimal.Zero) {
			continue
		}
		expected := debt.MinimumPayment
		if alloc, ok := allocations[debt.ID]; ok && alloc.GreaterThan(expected) {
			expected = alloc
		}
		sum = sum.Add(expected)
	}
	assert.True(t, req.RequiredSum.Equal(sum.Round(2)))
}
