package configurator

import (
	"net/http"

	"github.com/emberworks/forgefront-backend/api/middleware"
	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/api/validators"
	"github.com/emberworks/forgefront-backend/internal/session"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
)

// Fetch exposes the full configurator state: every attribute with its option
// domain and current value, the gridded length, and a priced preview of the
// product the current selections would produce.
func Fetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view specView
		_ = state.Do(func() error {
			view = newSpecView(state.Spec)
			return nil
		})

		responses.WriteSuccess(w, view)
	}
}

// Advance cycles the named attribute forward one option, wrapping at the end.
func Advance(logg *logger.Logger) http.HandlerFunc {
	return stepHandler(logg, func(state *session.State, attribute string) (string, error) {
		return state.Spec.Advance(attribute)
	})
}

// Retreat cycles the named attribute backward one option, wrapping at the
// start.
func Retreat(logg *logger.Logger) http.HandlerFunc {
	return stepHandler(logg, func(state *session.State, attribute string) (string, error) {
		return state.Spec.Retreat(attribute)
	})
}

func stepHandler(logg *logger.Logger, step func(*session.State, string) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stepRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view specView
		stepErr := state.Do(func() error {
			if _, err := step(state, payload.Attribute); err != nil {
				return err
			}
			view = newSpecView(state.Spec)
			return nil
		})
		if stepErr != nil {
			responses.WriteError(r.Context(), logg, w, stepErr)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// SetLength snaps the requested length onto the grid and stores it. Out-of-
// range values clamp; the response carries whatever value actually stuck.
func SetLength(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload lengthRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view specView
		_ = state.Do(func() error {
			state.Spec.SetLength(*payload.Length)
			view = newSpecView(state.Spec)
			return nil
		})

		responses.WriteSuccess(w, view)
	}
}

// AddToCart materializes the current selections as a product, adds one unit
// to the cart, and restarts the configurator from its defaults.
func AddToCart(m *metrics.StorefrontMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var result addResponse
		_ = state.Do(func() error {
			product := state.Spec.BuildProduct()
			line := state.Cart.AddOne(product)
			state.Spec.Reset()
			result = newAddResponse(product, line.Quantity)
			return nil
		})

		m.IncCartMutation("add")
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// Reset discards the session's selections and restarts from the defaults.
func Reset(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view specView
		_ = state.Do(func() error {
			state.Spec.Reset()
			view = newSpecView(state.Spec)
			return nil
		})

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
