package domain

// Transport mode of a single journey leg.
type Mode string

const (
	ModeRoad Mode = "Road"
	ModeSea  Mode = "Sea"
)

// Represents one mode-homogeneous segment of a journey.
// A JourneyLeg only exists inside its journey's leg sequence and always
// carries the full cargo weight of the originating row.
type JourneyLeg struct {
	Mode       Mode
	DistanceKm int
	WeightKg   float64
}

// Ordered origin -> destination pair. Order matters: A -> B and B -> A are
// distinct routes.
type Route struct {
	Origin             string
	OriginCountry      string
	Destination        string
	DestinationCountry string
}

// Key returns the canonical grouping key for the route.
func (r Route) Key() string {
	return r.Origin + " → " + r.Destination
}

// Represents the full realized transport plan for one input row.
// A Journey is created once during aggregation and never mutated.
//
// TotalRoadWeight equals WeightKg when any leg travels by road, otherwise 0;
// likewise TotalSeaWeight for sea. Cargo weight is attributed once per mode
// present on the journey, never once per leg, so a road-sea-road journey
// carrying 1000kg contributes 1000kg to road and 1000kg to sea.
type Journey struct {
	ID              int
	Route           Route
	WeightKg        float64
	DistanceKm      int
	Legs            []JourneyLeg
	TotalRoadWeight float64
	TotalSeaWeight  float64
}
