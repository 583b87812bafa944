// Package response is the single place where results and errors become JSON.
// Every handler writes through it, so every response — success or failure —
// carries the same envelope and Content-Type.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/logger"
)

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Common error codes
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInternalError = "INTERNAL_ERROR"
)

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// WriteDomainError maps the error taxonomy onto HTTP. Validation, conflict
// and bad-credential failures are all 400; only the unmatched-route fallback
// and missing catalog entries use 404.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
	case domain.KindNotFound:
		WriteError(w, http.StatusBadRequest, err.Error(), CodeNotFound)
	case domain.KindConflict:
		WriteError(w, http.StatusBadRequest, err.Error(), CodeConflict)
	case domain.KindAuth:
		WriteError(w, http.StatusBadRequest, err.Error(), CodeUnauthorized)
	default:
		WriteError(w, http.StatusInternalServerError, "Error interno del servidor", CodeInternalError)
	}
}
