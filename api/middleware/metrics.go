package middleware

import (
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5/middleware"
)

// Metrics times every request and records it once the inner chain returns,
// whatever status it produced. Mount it outside Recoverer so panics are
// counted as 500s.
func (mw *Middleware) Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			mw.record(r.Method, r.URL.Path, statusOf(ww), time.Since(start))
		})
	}
}

// record never fails the request; a broken series is only logged.
func (mw *Middleware) record(method, path string, status int, elapsed time.Duration) {
	if err := mw.recorder.Observe(method, path, status, elapsed); err != nil {
		mw.logger.Error("Failed to record request metrics",
			gecho.Field("error", err),
			gecho.Field("method", method),
			gecho.Field("path", path),
			gecho.Field("status", status),
		)
	}
}

// Handlers that never call WriteHeader or Write leave the status at 0;
// net/http sends 200 for them.
func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
