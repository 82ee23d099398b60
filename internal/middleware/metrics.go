package middleware

import (
	"net/http"
	"strconv"

	"github.com/darrylwongqz/ai-text-editor/internal/metrics"
)

var knownPaths = map[string]bool{
	"/api/health":    true,
	"/api/transform": true,
	"/metrics":       true,
}

// Metrics records request count by method, path, and status code.
// Unrouted paths share the "other" label to keep cardinality bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		path := r.URL.Path
		if !knownPaths[path] {
			path = "other"
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
	})
}
