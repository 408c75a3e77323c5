package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/pricing"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State names the coordinator's dialog position.
type State string

const (
	StateIdle         State = "idle"
	StatePreviewOpen  State = "preview_open"
	StateCartOpen     State = "cart_open"
	StateCheckoutOpen State = "checkout_open"
	// StateSubmitted is transient: Submit passes through it and lands on Idle
	// before returning, so callers never observe it between operations.
	StateSubmitted State = "submitted"
)

// OrderSnapshot is the immutable record handed to fulfillment: the checkout
// fields plus the cart as it stood at submission.
type OrderSnapshot struct {
	Fields      Fields
	Lines       []cart.Line
	ItemCount   int
	Total       decimal.Decimal
	SubmittedAt time.Time
}

// Confirmation is the fulfillment collaborator's receipt.
type Confirmation struct {
	OrderID    uuid.UUID
	ReceivedAt time.Time
}

// Fulfiller receives finalized orders. The core hands the snapshot over and
// forgets it.
type Fulfiller interface {
	Submit(ctx context.Context, snapshot OrderSnapshot) (*Confirmation, error)
}

// Coordinator gates order submission on dialog state, cart contents, and field
// validity. It is the only writer that clears the cart.
type Coordinator struct {
	state     State
	preview   catalog.Product
	cart      *cart.Store
	fulfiller Fulfiller
}

// NewCoordinator builds a coordinator over the session's cart.
func NewCoordinator(store *cart.Store, fulfiller Fulfiller) (*Coordinator, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if fulfiller == nil {
		return nil, fmt.Errorf("fulfiller required")
	}
	return &Coordinator{state: StateIdle, cart: store, fulfiller: fulfiller}, nil
}

// State reports the current dialog state.
func (c *Coordinator) State() State {
	return c.state
}

// PreviewProduct returns the product under preview, if any.
func (c *Coordinator) PreviewProduct() (catalog.Product, bool) {
	if c.state != StatePreviewOpen {
		return catalog.Product{}, false
	}
	return c.preview, true
}

// OpenPreview enters the preview dialog for the given product.
func (c *Coordinator) OpenPreview(p catalog.Product) error {
	if c.state != StateIdle {
		return c.refuse("open preview")
	}
	c.preview = p
	c.state = StatePreviewOpen
	return nil
}

// ClosePreview dismisses the preview without touching the cart.
func (c *Coordinator) ClosePreview() error {
	if c.state != StatePreviewOpen {
		return c.refuse("close preview")
	}
	c.preview = catalog.Product{}
	c.state = StateIdle
	return nil
}

// AddToCart carts the previewed product and closes the preview.
func (c *Coordinator) AddToCart() (cart.Line, error) {
	if c.state != StatePreviewOpen {
		return cart.Line{}, c.refuse("add previewed product")
	}
	line := c.cart.AddOne(c.preview)
	c.preview = catalog.Product{}
	c.state = StateIdle
	return line, nil
}

// OpenCart enters the cart dialog.
func (c *Coordinator) OpenCart() error {
	if c.state != StateIdle {
		return c.refuse("open cart")
	}
	c.state = StateCartOpen
	return nil
}

// CloseCart dismisses the cart dialog.
func (c *Coordinator) CloseCart() error {
	if c.state != StateCartOpen {
		return c.refuse("close cart")
	}
	c.state = StateIdle
	return nil
}

// BeginCheckout moves from the cart dialog to checkout. With an empty cart the
// transition is simply unavailable: no state change and no error, reported as
// false.
func (c *Coordinator) BeginCheckout() (bool, error) {
	if c.state != StateCartOpen {
		return false, c.refuse("begin checkout")
	}
	if pricing.ItemCount(c.cart.Snapshot()) == 0 {
		return false, nil
	}
	c.state = StateCheckoutOpen
	return true, nil
}

// CancelCheckout abandons checkout, cart untouched.
func (c *Coordinator) CancelCheckout() error {
	if c.state != StateCheckoutOpen {
		return c.refuse("cancel checkout")
	}
	c.state = StateIdle
	return nil
}

// Submit validates the fields, hands the order snapshot to fulfillment, clears
// the cart, and returns to Idle. On validation failure the coordinator stays
// in CheckoutOpen and nothing is mutated.
func (c *Coordinator) Submit(ctx context.Context, fields Fields) (*Confirmation, error) {
	if c.state != StateCheckoutOpen {
		return nil, c.refuse("submit order")
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	lines := c.cart.Snapshot()
	snapshot := OrderSnapshot{
		Fields:      fields,
		Lines:       lines,
		ItemCount:   pricing.ItemCount(lines),
		Total:       pricing.CartTotal(lines),
		SubmittedAt: time.Now().UTC(),
	}

	c.state = StateSubmitted
	confirmation, err := c.fulfiller.Submit(ctx, snapshot)
	if err != nil {
		c.state = StateCheckoutOpen
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hand off order")
	}

	c.cart.Clear()
	c.state = StateIdle
	return confirmation, nil
}

func (c *Coordinator) refuse(action string) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot %s", action)).
		WithDetails(map[string]any{"state": string(c.state)})
}
