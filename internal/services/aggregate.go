package services

import (
	"math"

	"shipment-insights-service/internal/domain"
)

// ProcessShipments turns validated rows into journeys and per-route groups.
//
// One journey is emitted per row in input order with sequential 1-based IDs.
// Journeys are then grouped by the ordered (origin, destination) pair,
// preserving first-seen key order; within a group, journeys keep their
// relative input order. ProcessShipments is total over validated input and
// never fails: malformed input (such as a non-finite weight) is a caller bug,
// not a handled case.
func ProcessShipments(rows []domain.TransportRow) *domain.Dataset {
	journeys := make([]domain.Journey, 0, len(rows))
	for i, row := range rows {
		distance := Distance(row.Origin, row.Destination)
		legs := Legs(distance, row.WeightKg)

		usesRoad, usesSea := false, false
		for _, leg := range legs {
			switch leg.Mode {
			case domain.ModeRoad:
				usesRoad = true
			case domain.ModeSea:
				usesSea = true
			}
		}

		journey := domain.Journey{
			ID: i + 1,
			Route: domain.Route{
				Origin:             row.Origin,
				OriginCountry:      row.OriginCountry,
				Destination:        row.Destination,
				DestinationCountry: row.DestinationCountry,
			},
			WeightKg:   row.WeightKg,
			DistanceKm: distance,
			Legs:       legs,
		}

		// Weight is attributed once per mode present on the journey, not
		// once per leg. This keeps a road-sea-road journey from doubling
		// its road weight downstream.
		if usesRoad {
			journey.TotalRoadWeight = row.WeightKg
		}
		if usesSea {
			journey.TotalSeaWeight = row.WeightKg
		}

		journeys = append(journeys, journey)
	}

	groups := make(map[string]*domain.RouteGroup, len(journeys))
	order := make([]string, 0, len(journeys))
	for _, j := range journeys {
		key := j.Route.Key()

		g, ok := groups[key]
		if !ok {
			// Distance and modes are pure functions of the route strings,
			// so the first member speaks for the whole group.
			g = &domain.RouteGroup{
				RouteKey:   key,
				Route:      j.Route,
				DistanceKm: j.DistanceKm,
				Modes:      ModesLabel(j.Legs),
			}
			groups[key] = g
			order = append(order, key)
		}

		g.TimesTaken++
		g.TotalWeight += j.WeightKg
		g.TotalRoadWeight += j.TotalRoadWeight
		g.TotalSeaWeight += j.TotalSeaWeight
		g.Journeys = append(g.Journeys, j)
	}

	routeGroups := make([]domain.RouteGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.TotalDistanceKm = g.DistanceKm * g.TimesTaken
		routeGroups = append(routeGroups, *g)
	}

	return &domain.Dataset{Journeys: journeys, RouteGroups: routeGroups}
}

// WeightByMode sums the attributed road and sea weights over a journey
// subset and rounds each total independently. Defined for empty input.
func WeightByMode(journeys []domain.Journey) domain.ChartData {
	var road, sea float64
	for _, j := range journeys {
		road += j.TotalRoadWeight
		sea += j.TotalSeaWeight
	}

	return domain.ChartData{
		Road: int(math.Round(road)),
		Sea:  int(math.Round(sea)),
	}
}
