// Package handler provides the JSON API handlers for the portfolio
// backend: identity, content sections, portfolio collections, and the
// public contact form.
package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds JSON request bodies (1 MB).
const maxBodySize = 1 << 20

// ErrorResponse is the standard API error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// WriteValidationError writes a 400 response with field-level details.
func WriteValidationError(w http.ResponseWriter, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "validation_error", "Validation failed", details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError logs the error and writes a 500 response without
// leaking internal details to the client.
func WriteInternalError(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	WriteError(w, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
}

// writeStoreError maps a store error to 404 or 500.
func writeStoreError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		WriteNotFound(w, fmt.Sprintf("%s not found", what))
		return
	}
	WriteInternalError(w, "loading "+what, err)
}

// decodeJSON decodes a bounded JSON request body into dst. Unknown fields
// are rejected so typos in admin payloads surface as 400s instead of being
// silently dropped.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "bad_request", "Invalid JSON body: "+err.Error(), nil)
		return false
	}
	return true
}

// parseID parses a positive integer identifier from its string form.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathID parses the {id} URL parameter.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, http.StatusBadRequest, "bad_request", "Invalid id", nil)
		return 0, false
	}
	return id, true
}
