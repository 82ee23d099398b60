package handler

import (
	"io"
	"net/http"
)

const healthyBody = "Service is healthy"

// Health reports liveness only; it never touches the upstream provider.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, healthyBody)
	}
}
