// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Body is the JSON shape of every error response.
type Body struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// WriteJSON writes v as JSON with status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Body{Error: msg})
}

// WriteFields writes a 422 with the first field message as the summary.
func WriteFields(w http.ResponseWriter, fields []FieldError) {
	msg := "Please fix the highlighted fields."
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	WriteJSON(w, http.StatusUnprocessableEntity, Body{Error: msg, Fields: fields})
}

// RenderNotFound writes a 404 with msg, or a generic message.
func RenderNotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Not found."
	}
	WriteError(w, http.StatusNotFound, msg)
}

// RenderUnauthorized writes the 401 returned to anonymous callers.
func RenderUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "Please sign in to continue.")
}

// RenderForbidden writes a 403 with msg.
func RenderForbidden(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "You don't have permission to do that."
	}
	WriteError(w, http.StatusForbidden, msg)
}
