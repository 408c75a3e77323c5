// Package pricing derives totals from cart snapshots. Everything here is
// stateless and recomputed per call; nothing is cached, so totals can never
// go stale against the cart.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/emberworks/forgefront-backend/internal/cart"
)

// LineTotal is unit price times quantity.
func LineTotal(line cart.Line) decimal.Decimal {
	return line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// CartTotal sums LineTotal over all lines.
func CartTotal(lines []cart.Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line))
	}
	return total
}

// ItemCount sums quantities over all lines.
func ItemCount(lines []cart.Line) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
