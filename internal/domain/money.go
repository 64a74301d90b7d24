package domain

import (
	"github.com/shopspring/decimal"
)

// PaidEpsilon is the balance below which a debt is treated as fully paid.
// Balances are rounded to 2 decimal places at every mutation point, so
// anything under half a cent can never be paid down further.
var PaidEpsilon = decimal.New(5, -3) // 0.005

// RoundMoney rounds a currency amount to 2 decimal places. Applied at every
// balance mutation so values stay on the cent grid across a full 600-month
// run. Rounding is idempotent: an already-rounded value is unchanged.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsPaid reports whether a balance counts as fully paid.
func IsPaid(balance decimal.Decimal) bool {
	return balance.LessThanOrEqual(PaidEpsilon)
}
