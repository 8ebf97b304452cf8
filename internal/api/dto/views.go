package dto

type RouteGroupResponse struct {
	RouteKey          string  `json:"route_key"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DistanceKm        int     `json:"distance_km"`
	TimesTaken        int     `json:"times_taken"`
	TotalDistanceKm   int     `json:"total_distance_km"`
	Modes             string  `json:"modes"`
	TotalWeightKg     float64 `json:"total_weight_kg"`
	TotalRoadWeightKg float64 `json:"total_road_weight_kg"`
	TotalSeaWeightKg  float64 `json:"total_sea_weight_kg"`
}

type ListRoutesResponse struct {
	Routes []RouteGroupResponse `json:"routes"`
}

type JourneyLegResponse struct {
	Mode       string  `json:"mode"`
	DistanceKm int     `json:"distance_km"`
	WeightKg   float64 `json:"weight_kg"`
}

type JourneyResponse struct {
	ID                int                  `json:"id"`
	Origin            string               `json:"origin"`
	Destination       string               `json:"destination"`
	DistanceKm        int                  `json:"distance_km"`
	WeightKg          float64              `json:"weight_kg"`
	Legs              []JourneyLegResponse `json:"legs"`
	TotalRoadWeightKg float64              `json:"total_road_weight_kg"`
	TotalSeaWeightKg  float64              `json:"total_sea_weight_kg"`
}

type ListJourneysResponse struct {
	Journeys []JourneyResponse `json:"journeys"`
}

type ChartResponse struct {
	Road int `json:"road"`
	Sea  int `json:"sea"`
}
