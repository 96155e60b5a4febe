package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/clock"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/notify"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/undo"
)

// resourceAPI is what a ResourceHandler needs from its service.
type resourceAPI[T any, C any, U any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id string, req U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler serves one admin resource: CRUD plus the delayed-delete
// flow. List responses come from the per-session controller snapshot so a
// pending deletion stays hidden until it commits or is undone.
type ResourceHandler[T any, C any, U any] struct {
	svc        resourceAPI[T, C, U]
	flows      *deleteFlows[T]
	audit      ports.AuditRecorder
	entityType string
	undoWindow time.Duration
}

// ResourceHandlerOptions groups dependencies for NewResourceHandler.
type ResourceHandlerOptions struct {
	Hub   *notify.Hub
	Clock clock.Clock
	Audit ports.AuditRecorder
	// Label names the entity in toast copy ("Guide"). EntityType is the
	// audit identifier ("guide").
	Label      string
	EntityType string

	CommitDelay   time.Duration
	ToastClose    time.Duration
	CommitTimeout time.Duration
}

// NewResourceHandler constructs a handler for one resource.
func NewResourceHandler[T any, C any, U any](
	svc resourceAPI[T, C, U],
	opts ResourceHandlerOptions,
) *ResourceHandler[T, C, U] {
	window := opts.CommitDelay
	if window <= 0 {
		window = undo.DefaultCommitDelay
	}
	h := &ResourceHandler[T, C, U]{
		svc:        svc,
		audit:      opts.Audit,
		entityType: opts.EntityType,
		undoWindow: window,
	}
	h.flows = newDeleteFlows(deleteFlowOptions[T]{
		Hub:           opts.Hub,
		Clock:         opts.Clock,
		Label:         opts.Label,
		ItemID:        func(v T) string { return itemID(v) },
		Commit:        svc.Delete,
		CommitDelay:   opts.CommitDelay,
		ToastClose:    opts.ToastClose,
		CommitTimeout: opts.CommitTimeout,
	})
	return h
}

// Register mounts the handler's routes under base, e.g. "/api/guides".
func (h *ResourceHandler[T, C, U]) Register(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+base, h.list)
	mux.HandleFunc("POST "+base, h.create)
	mux.HandleFunc("POST "+base+"/undo", h.undo)
	mux.HandleFunc("GET "+base+"/{id}", h.get)
	mux.HandleFunc("PATCH "+base+"/{id}", h.update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.remove)
}

// RemoveSession drops per-session delete state (logout, expiry).
func (h *ResourceHandler[T, C, U]) RemoveSession(sessionID string) {
	h.flows.remove(sessionID)
}

func (h *ResourceHandler[T, C, U]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	ctrl := h.flows.forSession(SessionFromContext(r.Context()))
	ctrl.Replace(items)
	WriteJSON(w, http.StatusOK, ctrl.Items())
}

func (h *ResourceHandler[T, C, U]) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (h *ResourceHandler[T, C, U]) create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !DecodeJSON(w, r, &req) {
		return
	}
	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

func (h *ResourceHandler[T, C, U]) update(w http.ResponseWriter, r *http.Request) {
	var req U
	if !DecodeJSON(w, r, &req) {
		return
	}
	item, err := h.svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// remove arms the delayed deletion: the row disappears from the session's
// snapshot now, the upstream delete goes out when the undo window elapses.
func (h *ResourceHandler[T, C, U]) remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess := SessionFromContext(r.Context())
	ctrl := h.flows.forSession(sess)

	err := ctrl.Delete(id)
	if apperr.IsNotFound(err) {
		// The session has no snapshot yet (direct API call without a prior
		// list). Refresh and retry once.
		items, listErr := h.svc.List(r.Context())
		if listErr != nil {
			WriteAppError(w, listErr)
			return
		}
		ctrl.Replace(items)
		err = ctrl.Delete(id)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.record(r, model.AuditActionDeleteArmed, id)
	WriteJSON(w, http.StatusAccepted, map[string]any{
		"status":         "pending",
		"id":             id,
		"undo_window_ms": h.undoWindow.Milliseconds(),
	})
}

// undo cancels the session's pending deletion, if one is still in its window.
func (h *ResourceHandler[T, C, U]) undo(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	ctrl := h.flows.forSession(sess)

	id, _ := ctrl.PendingID()
	restored := ctrl.Undo()
	if restored {
		h.record(r, model.AuditActionDeleteUndone, id)
	}
	WriteJSON(w, http.StatusOK, map[string]any{"restored": restored})
}

func (h *ResourceHandler[T, C, U]) record(r *http.Request, action model.AuditAction, id string) {
	if h.audit == nil {
		return
	}
	sess := SessionFromContext(r.Context())
	actor := "unknown"
	if sess != nil {
		actor = sess.User.Email
	}
	h.audit.Record(r.Context(), model.AuditEntry{
		Actor:      actor,
		Action:     action,
		EntityType: h.entityType,
		EntityID:   id,
	})
}

// itemID extracts the entity ID via the shared list-item contract.
func itemID(v any) string {
	if it, ok := v.(interface{ ItemID() string }); ok {
		return it.ItemID()
	}
	return ""
}
