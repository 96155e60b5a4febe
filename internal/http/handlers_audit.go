package httpx

import (
	"net/http"
	"strconv"

	"github.com/sikayet/console-api/internal/data"
)

// AuditHandler serves the audit trail to administrators.
type AuditHandler struct {
	repo *data.AuditRepo
}

// NewAuditHandler constructs an AuditHandler.
func NewAuditHandler(repo *data.AuditRepo) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// Register mounts the audit route. Callers gate it behind the admin role.
func (h *AuditHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/audit", h.list)
}

func (h *AuditHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := data.AuditListOptions{
		Actor:      q.Get("actor"),
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
	}
	if v := q.Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}

	entries, err := h.repo.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}
