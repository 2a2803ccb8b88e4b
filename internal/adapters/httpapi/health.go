package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/haulpath/tripplan/internal/domain/driver"
)

// HealthHandler reports process liveness and database connectivity
type HealthHandler struct {
	drivers driver.Repository
}

// NewHealthHandler creates a new handler probing through the given
// repository
func NewHealthHandler(drivers driver.Repository) *HealthHandler {
	return &HealthHandler{drivers: drivers}
}

// Check handles GET /health with a database connectivity test
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.drivers.FindAll(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
			"error":     err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}
