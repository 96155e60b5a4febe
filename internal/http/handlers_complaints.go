package httpx

import (
	"net/http"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/service"
	"github.com/sikayet/console-api/internal/undo"
)

// ComplaintHandler serves the moderation queue. Complaints have no create
// endpoint (end users file them on the public site) and carry the
// approve/reject moderation actions on top of the shared delete flow.
type ComplaintHandler struct {
	svc        *service.ComplaintService
	flows      *deleteFlows[model.Complaint]
	audit      ports.AuditRecorder
	undoWindow int64
}

// NewComplaintHandler constructs a ComplaintHandler.
func NewComplaintHandler(svc *service.ComplaintService, opts ResourceHandlerOptions) *ComplaintHandler {
	window := opts.CommitDelay
	if window <= 0 {
		window = undo.DefaultCommitDelay
	}
	h := &ComplaintHandler{
		svc:        svc,
		audit:      opts.Audit,
		undoWindow: window.Milliseconds(),
	}
	h.flows = newDeleteFlows(deleteFlowOptions[model.Complaint]{
		Hub:           opts.Hub,
		Clock:         opts.Clock,
		Label:         opts.Label,
		ItemID:        model.Complaint.ItemID,
		Commit:        svc.Delete,
		CommitDelay:   opts.CommitDelay,
		ToastClose:    opts.ToastClose,
		CommitTimeout: opts.CommitTimeout,
	})
	return h
}

// Register mounts the complaint routes.
func (h *ComplaintHandler) Register(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+base, h.list)
	mux.HandleFunc("POST "+base+"/undo", h.undo)
	mux.HandleFunc("GET "+base+"/{id}", h.get)
	mux.HandleFunc("PATCH "+base+"/{id}", h.update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.remove)
	mux.HandleFunc("POST "+base+"/{id}/approve", h.approve)
	mux.HandleFunc("POST "+base+"/{id}/reject", h.reject)
}

// RemoveSession drops per-session delete state.
func (h *ComplaintHandler) RemoveSession(sessionID string) {
	h.flows.remove(sessionID)
}

func (h *ComplaintHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	ctrl := h.flows.forSession(SessionFromContext(r.Context()))
	ctrl.Replace(items)
	WriteJSON(w, http.StatusOK, ctrl.Items())
}

func (h *ComplaintHandler) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (h *ComplaintHandler) update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateComplaintRequest
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

func (h *ComplaintHandler) remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctrl := h.flows.forSession(SessionFromContext(r.Context()))

	err := ctrl.Delete(id)
	if apperr.IsNotFound(err) {
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
		"undo_window_ms": h.undoWindow,
	})
}

func (h *ComplaintHandler) undo(w http.ResponseWriter, r *http.Request) {
	ctrl := h.flows.forSession(SessionFromContext(r.Context()))
	id, _ := ctrl.PendingID()
	restored := ctrl.Undo()
	if restored {
		h.record(r, model.AuditActionDeleteUndone, id)
	}
	WriteJSON(w, http.StatusOK, map[string]any{"restored": restored})
}

func (h *ComplaintHandler) approve(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (h *ComplaintHandler) reject(w http.ResponseWriter, r *http.Request) {
	// The reason body is optional.
	var req struct {
		Reason string `json:"reason"`
	}
	if r.ContentLength > 0 {
		if !DecodeJSON(w, r, &req) {
			return
		}
	}
	item, err := h.svc.Reject(r.Context(), r.PathValue("id"), req.Reason)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (h *ComplaintHandler) record(r *http.Request, action model.AuditAction, id string) {
	if h.audit == nil {
		return
	}
	actor := "unknown"
	if sess := SessionFromContext(r.Context()); sess != nil {
		actor = sess.User.Email
	}
	h.audit.Record(r.Context(), model.AuditEntry{
		Actor:      actor,
		Action:     action,
		EntityType: "complaint",
		EntityID:   id,
	})
}
