package handlers

import (
	"net/http"

	"shipment-insights-service/internal/api/dto"
	"shipment-insights-service/internal/ports"
	"shipment-insights-service/internal/services"
)

// ChartHandler serves mode-weight totals for the chart view.
type ChartHandler struct {
	Store ports.DatasetStore
}

// Weights returns road/sea weight totals over the whole dataset, or over one
// route group's journeys when route_key is given. The selected route is owned
// by the caller; this endpoint only resolves the key.
func (h *ChartHandler) Weights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	journeys, ok := selectJourneys(h.Store.Current(), r.URL.Query().Get("route_key"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown route")
		return
	}

	chart := services.WeightByMode(journeys)
	writeJSON(w, r, http.StatusOK, dto.ChartResponse{Road: chart.Road, Sea: chart.Sea})
}
