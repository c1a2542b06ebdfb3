package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
)

// viewFunc computes the payload of one dashboard view. The same function backs
// the HTML page and its /api/v1 JSON mirror.
type viewFunc func(r *http.Request) (interface{}, error)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]bool{}
	for name, dep := range map[string]Pinger{"backend": h.backend, "cache": h.cache, "history": h.history} {
		if dep == nil {
			continue
		}
		checks[name] = dep.Ping(ctx) == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	body := map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	}
	if h.warmer != nil {
		body["queueDepth"] = h.warmer.QueueDepth()
	}
	h.jsonResponse(w, status, body)
}

// limitBody caps request bodies at MaxBodySize.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warnw("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// api serves a view as JSON.
func (h *Handler) api(fn viewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			status, message := h.classify(r, err)
			h.errorResponse(w, status, message)
			return
		}
		h.jsonResponse(w, http.StatusOK, data)
	}
}

// classify maps a failure to an HTTP status and the one message the user sees.
func (h *Handler) classify(r *http.Request, err error) (int, string) {
	var se *backend.StatusError
	switch {
	case errors.Is(err, backend.ErrInvalidArgument):
		return http.StatusBadRequest, "Invalid request: " + strings.TrimPrefix(rootMessage(err), backend.ErrInvalidArgument.Error()+": ")
	case backend.IsNotFound(err):
		h.logger.Infow("Backend resource not found", "path", r.URL.Path, "error", err)
		return http.StatusNotFound, "We couldn't find what you were looking for."
	case errors.As(err, &se) && (se.Status == http.StatusBadRequest || se.Status == http.StatusUnprocessableEntity):
		h.logger.Warnw("Backend rejected request", "path", r.URL.Path, "error", err)
		return http.StatusBadRequest, "The analytics service rejected this request."
	case backend.IsMalformed(err):
		h.logger.Errorw("Backend returned an unexpected payload", "path", r.URL.Path, "error", err)
		return http.StatusBadGateway, "The analytics service returned data we could not read. Please try again."
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Errorw("Backend timed out", "path", r.URL.Path, "error", err)
		return http.StatusGatewayTimeout, "The analytics service took too long to respond. Please try again."
	default:
		h.logger.Errorw("Failed to load view", "path", r.URL.Path, "error", err)
		return http.StatusBadGateway, "Failed to load data from the analytics service. Please try again."
	}
}

// rootMessage returns the innermost part of an error chain built with %w.
func rootMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, backend.ErrInvalidArgument.Error()); i >= 0 {
		return msg[i:]
	}
	return msg
}

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", backend.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// pathParam returns a decoded chi URL parameter. chi matches against RawPath
// when the request path carries escapes, otherwise against the decoded Path.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return strings.TrimSpace(raw)
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(raw)
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, badRequest("%s must be a non-negative integer", key)
	}
	return n, nil
}
