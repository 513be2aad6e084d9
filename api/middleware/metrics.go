package middleware

import (
	"net/http"
	"time"

	"github.com/carewell-health/carewell-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics records per-route request counts and latency. The route label is
// the chi pattern, not the raw path, to keep cardinality bounded.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.Observe(r.Method, route, rec.status, time.Since(start))
		})
	}
}
