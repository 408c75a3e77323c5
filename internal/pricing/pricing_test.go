package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/catalog"
)

func TestLineTotal(t *testing.T) {
	t.Parallel()

	line := cart.Line{UnitPrice: decimal.NewFromFloat(12.50), Quantity: 3}
	if got := LineTotal(line); !got.Equal(decimal.NewFromFloat(37.50)) {
		t.Fatalf("expected 37.50, got %s", got)
	}
}

func TestCartTotalAndItemCount(t *testing.T) {
	t.Parallel()

	lines := []cart.Line{
		{ProductID: "ring-a", UnitPrice: decimal.NewFromInt(10), Quantity: 2},
		{ProductID: "ring-b", UnitPrice: decimal.NewFromInt(20), Quantity: 1},
	}

	if got := CartTotal(lines); !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected total 40, got %s", got)
	}
	if got := ItemCount(lines); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}

	if got := CartTotal(nil); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero total for empty cart, got %s", got)
	}
	if got := ItemCount(nil); got != 0 {
		t.Fatalf("expected 0 items for empty cart, got %d", got)
	}
}

func TestCartTotalTracksMutations(t *testing.T) {
	t.Parallel()

	store := cart.NewStore()
	a := catalog.Product{ID: "ring-a", UnitPrice: decimal.NewFromInt(10)}
	b := catalog.Product{ID: "ring-b", UnitPrice: decimal.NewFromInt(20)}

	store.AddOne(a)
	store.AddOne(a)
	store.AddOne(b)

	// Recomputed after every mutation; no drift between sequential reads.
	if got := CartTotal(store.Snapshot()); !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected 40 after adds, got %s", got)
	}

	store.UpdateQuantity("ring-a", -5)
	if got := CartTotal(store.Snapshot()); !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected 20 after removal, got %s", got)
	}

	sum := decimal.Zero
	for _, line := range store.Snapshot() {
		sum = sum.Add(LineTotal(line))
	}
	if !sum.Equal(CartTotal(store.Snapshot())) {
		t.Fatalf("cart total %s disagrees with line sum %s", CartTotal(store.Snapshot()), sum)
	}

	store.Clear()
	if got := CartTotal(store.Snapshot()); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero after clear, got %s", got)
	}
}
