package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
)

type stubFulfiller struct {
	submitted []OrderSnapshot
	err       error
}

func (s *stubFulfiller) Submit(ctx context.Context, snapshot OrderSnapshot) (*Confirmation, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.submitted = append(s.submitted, snapshot)
	return &Confirmation{}, nil
}

func validFields() Fields {
	return Fields{
		Name:         "Ada",
		Email:        "ada@example.com",
		Address:      "1 Forge Way",
		City:         "Sheffield",
		ZipCode:      "S1 2AA",
		PaymentToken: "tok_visa",
	}
}

func product(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: id, UnitPrice: decimal.NewFromInt(price)}
}

func newTestCoordinator(t *testing.T) (*Coordinator, *cart.Store, *stubFulfiller) {
	t.Helper()
	store := cart.NewStore()
	fulfiller := &stubFulfiller{}
	coord, err := NewCoordinator(store, fulfiller)
	require.NoError(t, err)
	return coord, store, fulfiller
}

func TestNewCoordinatorRequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewCoordinator(nil, &stubFulfiller{})
	require.Error(t, err)

	_, err = NewCoordinator(cart.NewStore(), nil)
	require.Error(t, err)
}

func TestPreviewOpenCloseRoundTrip(t *testing.T) {
	t.Parallel()

	coord, _, _ := newTestCoordinator(t)
	require.Equal(t, StateIdle, coord.State())

	require.NoError(t, coord.OpenPreview(product("ring-a", 10)))
	require.Equal(t, StatePreviewOpen, coord.State())

	previewed, ok := coord.PreviewProduct()
	require.True(t, ok)
	assert.Equal(t, "ring-a", previewed.ID)

	require.NoError(t, coord.ClosePreview())
	require.Equal(t, StateIdle, coord.State())

	_, ok = coord.PreviewProduct()
	assert.False(t, ok)
}

func TestAddToCartFromPreviewClosesPreview(t *testing.T) {
	t.Parallel()

	coord, store, _ := newTestCoordinator(t)
	require.NoError(t, coord.OpenPreview(product("ring-a", 10)))

	line, err := coord.AddToCart()
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, StateIdle, coord.State())
	assert.Equal(t, 1, store.Len())
}

func TestInvalidTransitionsAreStateConflicts(t *testing.T) {
	t.Parallel()

	coord, _, _ := newTestCoordinator(t)

	for name, call := range map[string]func() error{
		"close preview from idle":   coord.ClosePreview,
		"close cart from idle":      coord.CloseCart,
		"cancel checkout from idle": coord.CancelCheckout,
	} {
		err := call()
		require.Error(t, err, name)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, name)
		assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code(), name)
		assert.Equal(t, StateIdle, coord.State(), name)
	}

	_, err := coord.Submit(context.Background(), validFields())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestBeginCheckoutRefusedOnEmptyCart(t *testing.T) {
	t.Parallel()

	coord, _, _ := newTestCoordinator(t)
	require.NoError(t, coord.OpenCart())

	ok, err := coord.BeginCheckout()
	require.NoError(t, err)
	assert.False(t, ok)
	// No error and no state change: the action is unavailable, not broken.
	assert.Equal(t, StateCartOpen, coord.State())
}

func TestBeginCheckoutWithItems(t *testing.T) {
	t.Parallel()

	coord, store, _ := newTestCoordinator(t)
	store.AddOne(product("ring-a", 10))

	require.NoError(t, coord.OpenCart())
	ok, err := coord.BeginCheckout()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StateCheckoutOpen, coord.State())

	require.NoError(t, coord.CancelCheckout())
	assert.Equal(t, StateIdle, coord.State())
	assert.Equal(t, 1, store.Len(), "cancel must leave the cart untouched")
}

func TestSubmitWithMissingFieldsKeepsEverything(t *testing.T) {
	t.Parallel()

	coord, store, fulfiller := newTestCoordinator(t)
	store.AddOne(product("ring-a", 10))
	require.NoError(t, coord.OpenCart())
	_, err := coord.BeginCheckout()
	require.NoError(t, err)

	fields := validFields()
	fields.Email = ""
	fields.City = ""

	_, err = coord.Submit(context.Background(), fields)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 2, "one message per empty field")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "city")

	assert.Equal(t, StateCheckoutOpen, coord.State())
	assert.Equal(t, 1, store.Len(), "failed submit must never clear the cart")
	assert.Empty(t, fulfiller.submitted)
}

func TestSubmitSuccessClearsCartAndReturnsToIdle(t *testing.T) {
	t.Parallel()

	coord, store, fulfiller := newTestCoordinator(t)
	store.AddOne(product("ring-a", 10))
	store.AddOne(product("ring-a", 10))
	store.AddOne(product("ring-b", 20))

	require.NoError(t, coord.OpenCart())
	_, err := coord.BeginCheckout()
	require.NoError(t, err)

	confirmation, err := coord.Submit(context.Background(), validFields())
	require.NoError(t, err)
	require.NotNil(t, confirmation)

	assert.Equal(t, StateIdle, coord.State())
	assert.Equal(t, 0, store.Len())

	require.Len(t, fulfiller.submitted, 1)
	snapshot := fulfiller.submitted[0]
	assert.Equal(t, 3, snapshot.ItemCount)
	assert.True(t, snapshot.Total.Equal(decimal.NewFromInt(40)), "total was %s", snapshot.Total)
	assert.Len(t, snapshot.Lines, 2)
	assert.Equal(t, "Ada", snapshot.Fields.Name)
}

func TestSubmitFulfillerFailureKeepsCheckoutOpen(t *testing.T) {
	t.Parallel()

	coord, store, fulfiller := newTestCoordinator(t)
	fulfiller.err = errors.New("downstream unavailable")
	store.AddOne(product("ring-a", 10))

	require.NoError(t, coord.OpenCart())
	_, err := coord.BeginCheckout()
	require.NoError(t, err)

	_, err = coord.Submit(context.Background(), validFields())
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
	assert.Equal(t, StateCheckoutOpen, coord.State())
	assert.Equal(t, 1, store.Len())
}

func TestFieldsValidateAllEmpty(t *testing.T) {
	t.Parallel()

	err := Fields{}.Validate()
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 6)
}
