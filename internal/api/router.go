package api

import (
	"net/http"

	"shipment-insights-service/internal/api/handlers"
	"shipment-insights-service/internal/logger"
	"shipment-insights-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(parser ports.RecordParser, store ports.DatasetStore, log *logger.Logger, maxUploadBytes int64) http.Handler {
	mux := http.NewServeMux()

	datasetHandler := &handlers.DatasetHandler{
		Parser:         parser,
		Store:          store,
		Log:            log,
		MaxUploadBytes: maxUploadBytes,
	}
	routeHandler := &handlers.RouteHandler{Store: store}
	journeyHandler := &handlers.JourneyHandler{Store: store}
	chartHandler := &handlers.ChartHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/datasets", datasetHandler.Ingest)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/journeys", journeyHandler.List)
	mux.HandleFunc("/chart", chartHandler.Weights)

	return requestLogging(log, mux)
}
