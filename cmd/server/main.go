package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"shipment-insights-service/internal/adapters/csvsource"
	"shipment-insights-service/internal/adapters/store"
	"shipment-insights-service/internal/api"
	"shipment-insights-service/internal/config"
	"shipment-insights-service/internal/logger"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the CSV parser and in-memory dataset store behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfgPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.NewLogger(cfg.Logging.Level)

	datasets := store.NewMemoryDatasetStore()
	parser := csvsource.NewParser()

	router := api.NewRouter(parser, datasets, logg, cfg.Server.MaxUploadBytes)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logg.Info("server listening", "addr", addr)

	// Write timeout leaves headroom for large uploads on slow links; the
	// pipeline itself completes in bounded, small time.
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
