package handlers

import (
	"net/http"

	"shipment-insights-service/internal/api/dto"
	"shipment-insights-service/internal/domain"
	"shipment-insights-service/internal/ports"
)

// JourneyHandler serves journey drill-downs for the current dataset.
type JourneyHandler struct {
	Store ports.DatasetStore
}

// List returns every journey, or one route group's members when route_key is
// given. An unknown key is a 404; an empty dataset is just an empty list.
func (h *JourneyHandler) List(w http.ResponseWriter, r *http.Request) {
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

	res := dto.ListJourneysResponse{
		Journeys: make([]dto.JourneyResponse, 0, len(journeys)),
	}
	for _, j := range journeys {
		legs := make([]dto.JourneyLegResponse, 0, len(j.Legs))
		for _, leg := range j.Legs {
			legs = append(legs, dto.JourneyLegResponse{
				Mode:       string(leg.Mode),
				DistanceKm: leg.DistanceKm,
				WeightKg:   leg.WeightKg,
			})
		}

		res.Journeys = append(res.Journeys, dto.JourneyResponse{
			ID:                j.ID,
			Origin:            j.Route.Origin,
			Destination:       j.Route.Destination,
			DistanceKm:        j.DistanceKm,
			WeightKg:          j.WeightKg,
			Legs:              legs,
			TotalRoadWeightKg: j.TotalRoadWeight,
			TotalSeaWeightKg:  j.TotalSeaWeight,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// selectJourneys resolves the journey subset for an optional route key.
// The second return is false only for an unknown key.
func selectJourneys(ds *domain.Dataset, routeKey string) ([]domain.Journey, bool) {
	if routeKey == "" {
		if ds == nil {
			return nil, true
		}
		return ds.Journeys, true
	}

	if ds == nil {
		return nil, false
	}
	g := ds.Group(routeKey)
	if g == nil {
		return nil, false
	}
	return g.Journeys, true
}
