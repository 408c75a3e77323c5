package controllers

import (
	"net/http"

	"github.com/emberworks/forgefront-backend/api/middleware"
	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/internal/pricing"
	"github.com/emberworks/forgefront-backend/internal/session"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

func sessionFromRequest(r *http.Request) (*session.State, error) {
	state := middleware.SessionFromContext(r.Context())
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return state, nil
}

type sessionView struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	ItemCount int    `json:"item_count"`
	CartTotal string `json:"cart_total"`
}

// SessionState reports the coordinator state plus the cart headline figures.
func SessionState(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view sessionView
		_ = state.Do(func() error {
			lines := state.Cart.Snapshot()
			view = sessionView{
				SessionID: state.ID.String(),
				State:     string(state.Coordinator.State()),
				ItemCount: pricing.ItemCount(lines),
				CartTotal: types.FormatMoney(pricing.CartTotal(lines)),
			}
			return nil
		})

		responses.WriteSuccess(w, view)
	}
}
