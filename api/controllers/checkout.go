package controllers

import (
	"net/http"
	"time"

	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/api/validators"
	"github.com/emberworks/forgefront-backend/internal/checkout"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
)

// CartDialogOpen enters the cart dialog.
func CartDialogOpen(logg *logger.Logger) http.HandlerFunc {
	return coordinatorTransition(logg, func(state *sessionCoordinator) error {
		return state.OpenCart()
	})
}

// CartDialogClose dismisses the cart dialog.
func CartDialogClose(logg *logger.Logger) http.HandlerFunc {
	return coordinatorTransition(logg, func(state *sessionCoordinator) error {
		return state.CloseCart()
	})
}

// CheckoutBegin moves into checkout; refused while the cart is empty.
func CheckoutBegin(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var began bool
		if err := state.Do(func() error {
			ok, err := state.Coordinator.BeginCheckout()
			began = ok
			return err
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"began": began,
			"state": string(state.Coordinator.State()),
		})
	}
}

// CheckoutCancel abandons checkout, cart untouched.
func CheckoutCancel(logg *logger.Logger) http.HandlerFunc {
	return coordinatorTransition(logg, func(state *sessionCoordinator) error {
		return state.CancelCheckout()
	})
}

type submitResponse struct {
	OrderID    string `json:"order_id"`
	ReceivedAt string `json:"received_at"`
	State      string `json:"state"`
}

// CheckoutSubmit validates fields and hands the order to fulfillment.
func CheckoutSubmit(m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Presence of the six fields is the coordinator's own rule, which
		// reports every empty field at once; only the JSON shape is checked here.
		var fields checkout.Fields
		if err := validators.DecodeJSON(r, &fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var confirmation *checkout.Confirmation
		if err := state.Do(func() error {
			got, err := state.Coordinator.Submit(r.Context(), fields)
			confirmation = got
			return err
		}); err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeValidation {
				m.IncCheckoutDenied()
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		m.IncOrderSubmitted()
		m.IncCartMutation("clear")
		responses.WriteSuccessStatus(w, http.StatusCreated, submitResponse{
			OrderID:    confirmation.OrderID.String(),
			ReceivedAt: confirmation.ReceivedAt.Format(time.RFC3339),
			State:      string(state.Coordinator.State()),
		})
	}
}

type sessionCoordinator = checkout.Coordinator

func coordinatorTransition(logg *logger.Logger, fn func(*sessionCoordinator) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var resulting string
		if err := state.Do(func() error {
			if err := fn(state.Coordinator); err != nil {
				return err
			}
			resulting = string(state.Coordinator.State())
			return nil
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"state": resulting})
	}
}
