package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/darrylwongqz/ai-text-editor/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	t.Run("increments counter on 200", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler := Metrics(inner)

		before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/api/health", "200"))

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/api/health", "200"))
		if after != before+1 {
			t.Errorf("counter: got %f, want %f", after, before+1)
		}
	})

	t.Run("tracks error status codes", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})
		handler := Metrics(inner)

		before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("POST", "/api/transform", "400"))

		req := httptest.NewRequest(http.MethodPost, "/api/transform", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("POST", "/api/transform", "400"))
		if after != before+1 {
			t.Errorf("counter: got %f, want %f", after, before+1)
		}
	})

	t.Run("unknown paths collapse to other", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		handler := Metrics(inner)

		before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "other", "404"))

		for _, path := range []string{"/missing", "/wp-admin.php"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "other", "404"))
		if after != before+2 {
			t.Errorf("counter: got %f, want %f", after, before+2)
		}
	})
}
