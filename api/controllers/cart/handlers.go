package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/forgefront-backend/api/middleware"
	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/api/validators"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/session"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
)

// CartFetch exposes the cart contents with derived totals.
func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view cartView
		_ = state.Do(func() error {
			view = newCartView(state.Cart.Snapshot())
			return nil
		})

		responses.WriteSuccess(w, view)
	}
}

// CartAddItem adds one unit of a catalog product to the cart.
func CartAddItem(reg *catalog.Registry, m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := reg.Get(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view cartView
		_ = state.Do(func() error {
			state.Cart.AddOne(product)
			view = newCartView(state.Cart.Snapshot())
			return nil
		})

		m.IncCartMutation("add")
		responses.WriteSuccess(w, view)
	}
}

// CartUpdateItem applies a signed quantity delta to a line. The quantity
// floors at zero; a line reaching zero disappears.
func CartUpdateItem(m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id := chi.URLParam(r, "productId")
		var view cartView
		_ = state.Do(func() error {
			state.Cart.UpdateQuantity(id, *payload.Delta)
			view = newCartView(state.Cart.Snapshot())
			return nil
		})

		m.IncCartMutation("update")
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem drops a line entirely. Removing an absent line is a no-op.
func CartRemoveItem(m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id := chi.URLParam(r, "productId")
		var view cartView
		_ = state.Do(func() error {
			state.Cart.RemoveAll(id)
			view = newCartView(state.Cart.Snapshot())
			return nil
		})

		m.IncCartMutation("remove")
		responses.WriteSuccess(w, view)
	}
}

func sessionFromRequest(r *http.Request) (*session.State, error) {
	state := middleware.SessionFromContext(r.Context())
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return state, nil
}
