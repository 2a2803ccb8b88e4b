package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/application/driver/commands"
	"github.com/haulpath/tripplan/internal/application/driver/queries"
)

// DriverHandler handles HTTP requests for driver listings and duty logs
type DriverHandler struct {
	mediator common.Mediator
}

// NewDriverHandler creates a new handler backed by the mediator
func NewDriverHandler(mediator common.Mediator) *DriverHandler {
	return &DriverHandler{mediator: mediator}
}

// List handles GET /drivers/
// Returns all drivers ordered by name as a bare JSON array.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.mediator.Send(r.Context(), &queries.ListDriversQuery{})
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	response, ok := result.(*queries.ListDriversResponse)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("unexpected response type %T", result))
		return
	}

	writeJSON(w, http.StatusOK, response.Drivers)
}

// Create handles POST /drivers/
// Registers a driver and returns it with the assigned ID.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AddDriverCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.mediator.Send(r.Context(), &cmd)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	response, ok := result.(*commands.AddDriverResponse)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("unexpected response type %T", result))
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// Logs handles GET /drivers/{driverID}/logs/
// Returns the driver's daily records, newest date first, as a bare JSON
// array.
func (h *DriverHandler) Logs(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "driverID")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		// A non-numeric id can never name a driver, so it is a missing
		// resource rather than a malformed request.
		writeError(w, http.StatusNotFound, fmt.Sprintf("driver %q not found", idParam))
		return
	}

	result, err := h.mediator.Send(r.Context(), &queries.GetDriverLogsQuery{DriverID: uint(id)})
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	response, ok := result.(*queries.GetDriverLogsResponse)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("unexpected response type %T", result))
		return
	}

	writeJSON(w, http.StatusOK, response.Records)
}
