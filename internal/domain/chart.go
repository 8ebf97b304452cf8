package domain

// Chart-ready weight totals per transport mode, each rounded to the nearest
// whole kilogram. Purely derived data, recomputed on demand.
type ChartData struct {
	Road int
	Sea  int
}
