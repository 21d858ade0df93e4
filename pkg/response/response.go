// Package response writes the API's JSON bodies.
//
// Most endpoints answer with the envelope {data, success, message}. A few
// (auth, restaurant types) answer with the bare object; use JSON for those.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/dinehub/pkg/orm"
)

// Envelope is the standard response wrapper.
type Envelope struct {
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// JSON writes v as-is with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 envelope with data.
func Success(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusOK, Envelope{Data: data, Success: true, Message: message})
}

// Created sends a 201 envelope with data.
func Created(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusCreated, Envelope{Data: data, Success: true, Message: message})
}

// NoContent sends a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends a failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Paginated sends a 200 envelope whose data is the page of items; the
// pagination block rides along in meta so data stays a plain array.
func Paginated(w http.ResponseWriter, items interface{}, pagination orm.Pagination, message string) {
	JSON(w, http.StatusOK, Envelope{Data: items, Success: true, Message: message, Meta: pagination})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
