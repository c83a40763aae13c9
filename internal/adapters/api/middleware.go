package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emrekoca/penmark/internal/core/auth"
	"github.com/emrekoca/penmark/internal/infrastructure/metrics"
)

// identityHandler is a handler that receives the identity established by a
// guard. Identities are passed as arguments rather than stashed in the
// request context, so a handler cannot run without one.
type identityHandler func(w http.ResponseWriter, r *http.Request, id auth.Identity)

// requireTenant authenticates the request as a site credential before
// invoking next.
func (h *APIHandler) requireTenant(next identityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.tenantAuth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("tenant", "rejected").Inc()
			writeError(w, err)
			return
		}
		metrics.AuthAttemptsTotal.WithLabelValues("tenant", "ok").Inc()
		next(w, r, id)
	}
}

// requireAdmin authenticates the request against the admin secret before
// invoking next.
func (h *APIHandler) requireAdmin(next identityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.adminAuth.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("admin", "rejected").Inc()
			writeError(w, err)
			return
		}
		metrics.AuthAttemptsTotal.WithLabelValues("admin", "ok").Inc()
		next(w, r, id)
	}
}

// requireScope checks the authenticated identity against the {site} path
// segment. It composes after a guard, never in place of one.
func requireScope(next identityHandler) identityHandler {
	return func(w http.ResponseWriter, r *http.Request, id auth.Identity) {
		if err := auth.EnforceScope(id, r.PathValue("site")); err != nil {
			writeError(w, err)
			return
		}
		next(w, r, id)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a handler with request count and duration metrics.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
