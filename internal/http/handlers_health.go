package httpx

import (
	"context"
	"net/http"
	"time"
)

// upstreamPingTimeout bounds the reachability probe so a hung upstream cannot
// stall the liveness endpoint.
const upstreamPingTimeout = 2 * time.Second

// UpstreamPinger reports whether the upstream platform API is reachable.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness probe, including upstream reachability
// when a pinger is configured.
type HealthHandler struct {
	Upstream UpstreamPinger
}

// Register mounts the health route outside the session gate.
func (h HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.check)
}

// check always answers 200: an unreachable upstream degrades the report but
// does not fail the process probe.
func (h HealthHandler) check(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	if h.Upstream != nil {
		ctx, cancel := context.WithTimeout(r.Context(), upstreamPingTimeout)
		defer cancel()
		if err := h.Upstream.Ping(ctx); err != nil {
			body["status"] = "degraded"
			body["upstream"] = "unreachable"
		} else {
			body["upstream"] = "ok"
		}
	}
	WriteJSON(w, http.StatusOK, body)
}
