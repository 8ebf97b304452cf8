package domain

// Represents the aggregation of all journeys sharing one ordered route.
// A RouteGroup is built once per processing run from the full journey set.
//
// DistanceKm and Modes are identical for every member journey because
// distance is a pure function of the origin/destination strings, so both are
// taken from the group's first member. The per-mode weight totals sum the
// already mode-attributed journey weights, so no double counting can occur
// at this level.
type RouteGroup struct {
	RouteKey        string
	Route           Route
	DistanceKm      int
	TimesTaken      int
	TotalDistanceKm int
	Modes           string
	TotalWeight     float64
	TotalRoadWeight float64
	TotalSeaWeight  float64
	Journeys        []Journey
}
