package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "texteditor_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// TransformDuration tracks upstream latency per action.
	TransformDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "texteditor_transform_duration_seconds",
		Help:    "Time spent on a transformation, including the upstream call.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"action"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "texteditor_input_chars",
		Help:    "Number of characters in transform input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// TransformErrors counts failed transformations by action and error kind.
	TransformErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "texteditor_transform_errors_total",
		Help: "Failed transformations by action and error kind.",
	}, []string{"action", "kind"})
)
