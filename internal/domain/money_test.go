package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundMoney_Idempotent(t *testing.T) {
	values := []string{"0", "0.005", "99.994", "99.995", "-12.345", "1234567.891"}
	for _, raw := range values {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			t.Fatal(err)
		}
		once := RoundMoney(v)
		twice := RoundMoney(once)
		if !once.Equal(twice) {
			t.Errorf("rounding %s is not idempotent: %s != %s", raw, once, twice)
		}
	}
}

func TestIsPaid(t *testing.T) {
	if !IsPaid(decimal.Zero) {
		t.Error("zero balance must count as paid")
	}
	if !IsPaid(decimal.NewFromFloat(0.004)) {
		t.Error("sub-epsilon balance must count as paid")
	}
	if IsPaid(decimal.NewFromFloat(0.01)) {
		t.Error("one cent is still owed")
	}
}

func TestEnsureDebtIDs(t *testing.T) {
	debts := []Debt{
		{ID: "keep-me", Name: "A"},
		{Name: "B"},
		{Name: "C"},
	}

	EnsureDebtIDs(debts)

	if debts[0].ID != "keep-me" {
		t.Errorf("existing id was rewritten to %q", debts[0].ID)
	}
	if debts[1].ID == "" || debts[2].ID == "" {
		t.Error("missing ids were not assigned")
	}
	if debts[1].ID == debts[2].ID {
		t.Error("assigned ids must be unique")
	}
}

func TestMonthlyRate(t *testing.T) {
	d := Debt{AnnualRatePercent: decimal.NewFromInt(12)}
	if !d.MonthlyRate().Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("expected 0.01, got %s", d.MonthlyRate())
	}
}
