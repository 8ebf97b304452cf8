package services

import (
	"strings"

	"shipment-insights-service/internal/domain"
)

// Journeys longer than this are assumed to cross water and are split into
// road-sea-road legs. The threshold is strict: exactly 1500 stays on the road.
const seaThresholdKm = 1500

// Fixed length of the road leg on each end of a sea crossing.
const portTransferKm = 100

// Distance derives a synthetic transport distance in kilometers for an
// origin/destination pair.
//
// The value is a pure function of the two strings: the code points of the
// concatenation are summed and folded into the [100, 3100) range. Identical
// inputs always yield identical output within and across runs, so callers
// can rely on stable distances without caching. No I/O, no geocoding.
func Distance(origin, destination string) int {
	sum := 0
	for _, r := range origin + destination {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}

	return sum%3000 + 100
}

// Legs splits a journey of the given distance into transport legs.
//
// Short journeys are a single road leg. Anything beyond seaThresholdKm
// becomes road-sea-road: a fixed port transfer on each end and the remainder
// by sea (never floored or clamped). Every leg carries the full cargo weight.
func Legs(distance int, weight float64) []domain.JourneyLeg {
	if distance <= seaThresholdKm {
		return []domain.JourneyLeg{
			{Mode: domain.ModeRoad, DistanceKm: distance, WeightKg: weight},
		}
	}

	return []domain.JourneyLeg{
		{Mode: domain.ModeRoad, DistanceKm: portTransferKm, WeightKg: weight},
		{Mode: domain.ModeSea, DistanceKm: distance - 2*portTransferKm, WeightKg: weight},
		{Mode: domain.ModeRoad, DistanceKm: portTransferKm, WeightKg: weight},
	}
}

// ModesLabel renders a leg sequence as a display string, e.g.
// "Road + Sea + Road". Empty input yields an empty string.
func ModesLabel(legs []domain.JourneyLeg) string {
	parts := make([]string, 0, len(legs))
	for _, leg := range legs {
		parts = append(parts, string(leg.Mode))
	}

	return strings.Join(parts, " + ")
}
