package ports

import "shipment-insights-service/internal/domain"

// Port: ownership boundary for the current processed dataset.
//
// The store is the only shared state in the system; the pipeline itself is
// pure. There is exactly one active dataset at a time and ingesting new input
// fully replaces it.
type DatasetStore interface {
	// Replace swaps in the dataset produced by the latest ingestion run.
	Replace(ds *domain.Dataset)
	// Current returns the active dataset, or nil when nothing has been
	// ingested yet.
	Current() *domain.Dataset
}
