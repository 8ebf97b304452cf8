package domain

// Holds all derived state for one processing run: every journey in input
// order plus the per-route aggregation. Re-running the pipeline on new input
// builds a complete replacement; a Dataset is never mutated after
// construction.
type Dataset struct {
	Journeys    []Journey
	RouteGroups []RouteGroup
}

// Group returns the route group with the given key, or nil when the key is
// not part of this dataset.
func (d *Dataset) Group(routeKey string) *RouteGroup {
	for i := range d.RouteGroups {
		if d.RouteGroups[i].RouteKey == routeKey {
			return &d.RouteGroups[i]
		}
	}
	return nil
}
