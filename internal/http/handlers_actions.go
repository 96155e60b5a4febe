package httpx

import (
	"context"
	"net/http"
)

// toggleHandler serves POST actions whose body is {"active": bool}, like FAQ
// visibility and user account enable/disable.
func toggleHandler[T any](fn func(ctx context.Context, id string, active bool) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Active bool `json:"active"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		item, err := fn(r.Context(), r.PathValue("id"), req.Active)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, item)
	}
}

// actionHandler serves body-less POST actions like guide activation.
func actionHandler[T any](fn func(ctx context.Context, id string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := fn(r.Context(), r.PathValue("id"))
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, item)
	}
}
