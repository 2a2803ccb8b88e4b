package httpapi

import "net/http"

// ProviderStatus describes one directions provider in the fallback chain.
// Credentials never cross this boundary; only whether one is configured.
type ProviderStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Fallback   bool   `json:"fallback"`
}

// ProviderHandler serves the directions provider roster
type ProviderHandler struct {
	statuses []ProviderStatus
}

// NewProviderHandler creates a handler reporting the given provider
// statuses in chain preference order.
func NewProviderHandler(statuses []ProviderStatus) *ProviderHandler {
	if statuses == nil {
		statuses = []ProviderStatus{}
	}
	return &ProviderHandler{statuses: statuses}
}

// Status handles GET /providers/
func (h *ProviderHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.statuses)
}
