package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// Options configures the middleware stack.
type Options struct {
	APIKey         string
	AllowedOrigins []string
	RateLimiter    *RateLimiter
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → RateLimit → APIKey → MaxBytes → Timeout → mux
func Chain(handler http.Handler, opts Options) http.Handler {
	h := handler
	if opts.RequestTimeout > 0 {
		msg := fmt.Sprintf(`{"code":%d,"message":"request timeout"}`, http.StatusServiceUnavailable)
		h = http.TimeoutHandler(h, opts.RequestTimeout, msg)
	}
	if opts.MaxBodyBytes > 0 {
		h = MaxBytes(opts.MaxBodyBytes)(h)
	}
	h = APIKey(opts.APIKey)(h)
	if opts.RateLimiter != nil {
		h = RateLimit(opts.RateLimiter)(h)
	}
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(opts.AllowedOrigins)(h)
	return h
}
