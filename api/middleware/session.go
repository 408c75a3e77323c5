package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/emberworks/forgefront-backend/api/responses"
	"github.com/emberworks/forgefront-backend/internal/session"
	"github.com/emberworks/forgefront-backend/pkg/config"
	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
	"github.com/emberworks/forgefront-backend/pkg/logger"
)

// Session resolves the visitor's session from the cookie, creating one when
// the cookie is missing, malformed, or points at an evicted session.
func Session(reg *session.Registry, cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := resolve(reg, r, cfg.CookieName)
			if state == nil {
				created, err := reg.Create()
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session"))
					return
				}
				state = created
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    state.ID.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSession(r.Context(), state)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, state.ID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolve(reg *session.Registry, r *http.Request, cookieName string) *session.State {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	state, ok := reg.Get(id)
	if !ok {
		return nil
	}
	return state
}
