package httpx

import (
	"net/http"

	"github.com/sikayet/console-api/internal/notify"
)

// NotificationHandler exposes the session's active toasts and their actions.
// The browser polls the list and posts back when the user clicks an action
// button (the undo flow rides on this).
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// Register mounts the notification routes.
func (h *NotificationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notifications", h.list)
	mux.HandleFunc("POST /api/notifications/{id}/action", h.invokeAction)
	mux.HandleFunc("DELETE /api/notifications/{id}", h.dismiss)
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		WriteAppError(w, sessionExpiredError())
		return
	}
	WriteJSON(w, http.StatusOK, h.hub.ForSession(sess.ID).Active())
}

// invokeAction runs a toast's action button. An expired or already-dismissed
// toast reports invoked=false rather than an error; the undo window closing
// between render and click is an expected race.
func (h *NotificationHandler) invokeAction(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		WriteAppError(w, sessionExpiredError())
		return
	}
	invoked := h.hub.ForSession(sess.ID).InvokeAction(r.PathValue("id"))
	WriteJSON(w, http.StatusOK, map[string]any{"invoked": invoked})
}

func (h *NotificationHandler) dismiss(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		WriteAppError(w, sessionExpiredError())
		return
	}
	dismissed := h.hub.ForSession(sess.ID).Dismiss(r.PathValue("id"))
	WriteJSON(w, http.StatusOK, map[string]any{"dismissed": dismissed})
}
