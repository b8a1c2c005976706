// Package response writes the API's JSON envelope.
//
// Every payload carries a boolean success flag. Successful responses put
// the payload under data (plus meta for paginated lists); failures carry
// either a single error string or a field→messages map under errors.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/stockwise/pkg/orm"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Meta    *orm.Pagination     `json:"meta,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Message sends a 200 with a human-readable message and no data
// (delete confirmations, logout).
func Message(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Success: true, Message: message})
}

// Paginated sends a 200 response with data and a pagination meta object.
func Paginated(w http.ResponseWriter, data interface{}, p orm.Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Meta: &p})
}

// Error sends a JSON error response with a single error string.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Error: message})
}

// ValidationError sends a 422 with a field→messages map. The input maps
// each field to its first failing rule's message; the wire format keeps
// a message list per field.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	fieldErrs := make(map[string][]string, len(errs))
	for field, msg := range errs {
		fieldErrs[field] = []string{msg}
	}
	write(w, http.StatusUnprocessableEntity, envelope{
		Success: false,
		Errors:  fieldErrs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
