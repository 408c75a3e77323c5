package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/api/validators"
	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/catalog"
	"github.com/emberworks/forgefront-backend/internal/renderer"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

// PreviewOpen enters the preview dialog for a catalog product.
func PreviewOpen(reg *catalog.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := reg.Get(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Do(func() error {
			return state.Coordinator.OpenPreview(product)
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductView(product))
	}
}

// PreviewClose dismisses the preview dialog.
func PreviewClose(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := state.Do(func() error {
			return state.Coordinator.ClosePreview()
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"state": "idle"})
	}
}

// PreviewAddToCart carts the previewed product and closes the preview.
func PreviewAddToCart(m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var line cart.Line
		if err := state.Do(func() error {
			added, err := state.Coordinator.AddToCart()
			if err != nil {
				return err
			}
			line = added
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncCartMutation("add")
		responses.WriteSuccess(w, map[string]any{
			"product_id": line.ProductID,
			"quantity":   line.Quantity,
			"unit_price": types.FormatMoney(line.UnitPrice),
		})
	}
}

// PreviewRender hands out the render descriptor for the previewed product.
func PreviewRender(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input renderer.Input
		if err := state.Do(func() error {
			product, ok := state.Coordinator.PreviewProduct()
			if !ok {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "no preview open")
			}
			input = renderer.Describe(product)
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, input)
	}
}

type hoverRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Entered   bool   `json:"entered"`
}

// PreviewHover absorbs renderer pointer-hover signals. The core ignores them.
func PreviewHover(collab *renderer.Collaborator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload hoverRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		collab.OnHover(r.Context(), payload.ProductID, payload.Entered)
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "ignored"})
	}
}

type loadFailureRequest struct {
	ModelRef string `json:"model_ref" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

// PreviewLoadFailure records a client-side mesh load failure. It is logged
// and acknowledged; cart and configurator state are untouched.
func PreviewLoadFailure(collab *renderer.Collaborator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loadFailureRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		collab.ReportLoadFailure(r.Context(), payload.ModelRef, errors.New(payload.Reason))
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "logged"})
	}
}
