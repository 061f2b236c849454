package entity

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// maxAmount is the exclusive upper bound of |amount| for a DECIMAL(15, 2) column.
var maxAmount = decimal.New(1, 13)

// AmountFitsStorage reports whether amount can be stored without rounding or
// overflow: at most two decimal places and an absolute value below 10^13.
func AmountFitsStorage(amount decimal.Decimal) bool {
	if !amount.Equal(amount.Round(AmountScale)) {
		return false
	}
	return amount.Abs().LessThan(maxAmount)
}
