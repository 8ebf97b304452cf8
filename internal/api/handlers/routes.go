package handlers

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"shipment-insights-service/internal/api/dto"
	"shipment-insights-service/internal/domain"
	"shipment-insights-service/internal/ports"
)

// RouteHandler serves the aggregated per-route table.
type RouteHandler struct {
	Store ports.DatasetStore
}

// List returns the route groups of the current dataset. Sorting is a display
// concern, so it happens here rather than in the aggregator: the default is
// most-travelled first, ?sort=route switches to route name ascending.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = "frequency"
	}
	if sortKey != "frequency" && sortKey != "route" {
		writeError(w, r, http.StatusBadRequest, "sort must be 'frequency' or 'route'")
		return
	}

	var groups []domain.RouteGroup
	if ds := h.Store.Current(); ds != nil {
		groups = slices.Clone(ds.RouteGroups)
	}

	switch sortKey {
	case "route":
		slices.SortStableFunc(groups, func(a, b domain.RouteGroup) int {
			return strings.Compare(a.RouteKey, b.RouteKey)
		})
	default:
		// Stable sort keeps first-seen order for equal frequencies.
		slices.SortStableFunc(groups, func(a, b domain.RouteGroup) int {
			return cmp.Compare(b.TimesTaken, a.TimesTaken)
		})
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteGroupResponse, 0, len(groups)),
	}
	for _, g := range groups {
		res.Routes = append(res.Routes, dto.RouteGroupResponse{
			RouteKey:          g.RouteKey,
			Origin:            g.Route.Origin,
			Destination:       g.Route.Destination,
			DistanceKm:        g.DistanceKm,
			TimesTaken:        g.TimesTaken,
			TotalDistanceKm:   g.TotalDistanceKm,
			Modes:             g.Modes,
			TotalWeightKg:     g.TotalWeight,
			TotalRoadWeightKg: g.TotalRoadWeight,
			TotalSeaWeightKg:  g.TotalSeaWeight,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
