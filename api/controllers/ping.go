package controllers

import (
	"net/http"

	"github.com/emberworks/forgefront-backend/api/middleware"
	"github.com/emberworks/forgefront-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func StorefrontPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "storefront", "status": "ok"}
		if state := middleware.SessionFromContext(r.Context()); state != nil {
			payload["session_id"] = state.ID.String()
		}
		responses.WriteSuccess(w, payload)
	}
}
