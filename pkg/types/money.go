package types

import "github.com/shopspring/decimal"

// FormatMoney renders a monetary amount rounded to two decimal places, half
// away from zero. Every displayed figure in the API goes through this function
// so cart, preview, and checkout never disagree on rounding.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
