package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/darrylwongqz/ai-text-editor/internal/adapter"
	"github.com/darrylwongqz/ai-text-editor/internal/metrics"
	"github.com/darrylwongqz/ai-text-editor/internal/transform"
)

type transformRequest struct {
	Text   *string          `json:"text"`
	Action transform.Action `json:"action"`
	// Only consulted when Action is translate.
	TargetLanguage *string `json:"target_language,omitempty"`
}

var errTrailingData = errors.New("trailing data after JSON body")

type transformResponse struct {
	TransformedText string `json:"transformed_text"`
}

func Transform(t adapter.Transformer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req transformRequest
		dec := json.NewDecoder(r.Body)
		err := dec.Decode(&req)
		if err == nil && dec.More() {
			err = errTrailingData
		}
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			if errors.Is(err, transform.ErrUnknownAction) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Action == "" {
			writeError(w, http.StatusBadRequest, "action is required")
			return
		}
		if req.Text == nil {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		text := *req.Text

		var lang string
		if req.TargetLanguage != nil {
			lang = *req.TargetLanguage
		}

		metrics.InputChars.Observe(float64(len(text)))

		// The upstream call completes even if the caller goes away.
		ctx := context.WithoutCancel(r.Context())

		start := time.Now()
		out, err := t.Transform(ctx, text, req.Action, lang)
		metrics.TransformDuration.WithLabelValues(string(req.Action)).Observe(time.Since(start).Seconds())

		if err != nil {
			kind := transform.KindOf(err)
			metrics.TransformErrors.WithLabelValues(string(req.Action), kind.String()).Inc()
			slog.Error("transform failed",
				"action", req.Action,
				"kind", kind.String(),
				"adapter", t.Name(),
				"error", err,
			)
			writeError(w, transform.StatusCode(err), err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transformResponse{TransformedText: out})
	}
}
