package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/haulpath/tripplan/internal/domain/shared"
)

// ErrorResponse is the JSON body returned for any failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps application errors to HTTP status codes. Anything
// not classified by the domain is a server fault.
func statusForError(err error) int {
	var invalid *shared.InvalidInputError
	var notFound *shared.DriverNotFoundError

	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
