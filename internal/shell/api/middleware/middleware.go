// Package middleware provides HTTP middleware for the menu API.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/artpar/menud/internal/core/domain"
	"github.com/artpar/menud/internal/core/validation"
)

// =============================================================================
// Context Keys
// =============================================================================

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	menuItemKey  contextKey = "menu_item"
)

// RequestIDFromContext returns the request id assigned by RequestID, or ""
// when unset.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// MenuItemFromContext returns the validated menu item placed by
// MenuItemPayload.
func MenuItemFromContext(ctx context.Context) (domain.MenuItem, bool) {
	item, ok := ctx.Value(menuItemKey).(domain.MenuItem)
	return item, ok
}

// =============================================================================
// Request ID
// =============================================================================

// RequestID assigns each request an id and echoes it in the X-Request-Id
// response header. An id supplied by the client is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// =============================================================================
// Request Logging
// =============================================================================

// statusRecorder captures the response status and size for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// RequestLogger logs every request as it arrives and again on completion.
//
// The arrival line is "{method} {path}". POST and PUT requests also log the
// request body; the body is rewound afterwards so downstream readers see
// the full stream. The middleware never rejects a request.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := RequestIDFromContext(r.Context())

			logger.Info(r.Method+" "+r.URL.Path, "request_id", reqID)

			if r.Method == http.MethodPost || r.Method == http.MethodPut {
				if body, err := io.ReadAll(r.Body); err == nil {
					r.Body = io.NopCloser(bytes.NewReader(body))
					if len(body) > 0 {
						logger.Info("request body",
							"request_id", reqID,
							"body", string(body),
						)
					}
				}
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request completed",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
			)
		})
	}
}

// =============================================================================
// Menu Item Payload
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages"`
}

// MenuItemPayload decodes and validates a menu item write body.
//
// The body must be a JSON object. Each field rule is checked independently
// and every failure is collected, so one response reports all defects. On
// success the payload is normalized (available defaults to true), converted
// to the typed domain record, and placed in the request context; handlers
// never see the untyped form.
func MenuItemPayload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
			return
		}

		if messages := validation.ValidateMenuItemPayload(payload); len(messages) > 0 {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Error:    "Validation failed",
				Messages: messages,
			})
			return
		}

		if _, present := payload["available"]; !present {
			payload["available"] = true
		}

		ctx := context.WithValue(r.Context(), menuItemKey, domain.ItemFromPayload(payload))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
