package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clawguinness/clawboard/internal/validation"
)

const maxBodyBytes = 1 << 20 // 1MB

var (
	errInvalidBody  = errors.New("invalid request body")
	errInvalidLimit = errors.New("invalid limit")
)

// Limits bounds the ?limit= parameter of list endpoints
type Limits struct {
	Default int
	Max     int
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeSuccess writes {"success": true, "<key>": value}
func writeSuccess(w http.ResponseWriter, key string, value any) {
	body := map[string]any{"success": true}
	if key != "" {
		body[key] = value
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error, msg string, args ...any) {
	args = append(args, "error", err, "method", r.Method, "path", r.URL.Path)
	slog.Error(msg, args...)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeValidationError reports a field error as 400, anything else as 500
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fieldErr.Message,
			"field": fieldErr.Field,
		})
		return
	}
	writeInternalError(w, r, err, "request failed")
}

// decodeJSON reads a single JSON object into dst. An empty body is only
// accepted when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return errInvalidBody
	}
	return nil
}

// parseLimit reads ?limit=. Missing means the default, values above the
// maximum are clamped, anything else that is not a positive integer fails.
func parseLimit(r *http.Request, limits Limits) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return limits.Default, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errInvalidLimit
	}

	return min(limit, limits.Max), nil
}
