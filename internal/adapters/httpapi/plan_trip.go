package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/haulpath/tripplan/internal/application/common"
	"github.com/haulpath/tripplan/internal/application/planning/commands"
)

// PlanTripRequest is the JSON body accepted by POST /plan-trip/.
// Coordinates are [longitude, latitude] pairs. driver_id attaches the
// plan to a stored driver; without it current_cycle_used_hours seeds the
// weekly clock directly.
type PlanTripRequest struct {
	CurrentLocation       []float64 `json:"current_location"`
	Pickup                []float64 `json:"pickup"`
	Dropoff               []float64 `json:"dropoff"`
	DriverID              *uint     `json:"driver_id"`
	CurrentCycleUsedHours *float64  `json:"current_cycle_used_hours"`
	StartDate             string    `json:"start_date"`
	StartTime             string    `json:"start_time"`
}

// PlanTripHandler handles HTTP requests for trip planning
type PlanTripHandler struct {
	mediator common.Mediator
}

// NewPlanTripHandler creates a new handler backed by the mediator
func NewPlanTripHandler(mediator common.Mediator) *PlanTripHandler {
	return &PlanTripHandler{mediator: mediator}
}

// PlanTrip handles POST /plan-trip/
func (h *PlanTripHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	cmd := &commands.PlanTripCommand{
		CurrentLocation:       req.CurrentLocation,
		Pickup:                req.Pickup,
		Dropoff:               req.Dropoff,
		DriverID:              req.DriverID,
		CurrentCycleUsedHours: req.CurrentCycleUsedHours,
		StartDate:             req.StartDate,
		StartTime:             req.StartTime,
	}

	result, err := h.mediator.Send(r.Context(), cmd)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			common.LoggerFromContext(r.Context()).Log("error", "trip planning failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		writeError(w, status, err.Error())
		return
	}

	response, ok := result.(*commands.PlanTripResponse)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("unexpected response type %T", result))
		return
	}

	writeJSON(w, http.StatusOK, response)
}
