package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shipment-insights-service/internal/adapters/csvsource"
	"shipment-insights-service/internal/adapters/store"
	"shipment-insights-service/internal/api/dto"
	"shipment-insights-service/internal/logger"
)

func newTestRouter() http.Handler {
	return NewRouter(
		csvsource.NewParser(),
		store.NewMemoryDatasetStore(),
		logger.NewLogger("error"),
		1<<20,
	)
}

func postCSV(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router http.Handler, path string, v any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if v != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
			t.Fatalf("decode %s response: %v", path, err)
		}
	}
	return rec
}

const sampleCSV = "origin,originCountry,destination,destinationCountry,weightKg\n" +
	"London,GB,Paris,FR,100\n" +
	"London,GB,Paris,FR,200\n" +
	"Shanghai,CN,Rotterdam,NL,1000\n" +
	",,Nowhere,,500\n"

func TestIngestAndRoutes(t *testing.T) {
	router := newTestRouter()

	rec := postCSV(t, router, sampleCSV)
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var ingest dto.IngestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &ingest); err != nil {
		t.Fatal(err)
	}
	if ingest.JourneyCount != 3 {
		t.Errorf("journey count = %d, want 3", ingest.JourneyCount)
	}
	if ingest.RouteGroupCount != 2 {
		t.Errorf("route group count = %d, want 2", ingest.RouteGroupCount)
	}
	if len(ingest.RejectedRows) != 1 || ingest.RejectedRows[0].Row != 4 {
		t.Errorf("rejected rows = %+v, want row 4 only", ingest.RejectedRows)
	}

	var routes dto.ListRoutesResponse
	getJSON(t, router, "/routes", &routes)
	if len(routes.Routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(routes.Routes))
	}
	// Default sort is frequency descending.
	if routes.Routes[0].RouteKey != "London → Paris" {
		t.Errorf("first route = %q", routes.Routes[0].RouteKey)
	}
	if routes.Routes[0].TimesTaken != 2 || routes.Routes[0].TotalWeightKg != 300 {
		t.Errorf("route group = %+v", routes.Routes[0])
	}

	var byName dto.ListRoutesResponse
	getJSON(t, router, "/routes?sort=route", &byName)
	if byName.Routes[0].RouteKey != "London → Paris" || byName.Routes[1].RouteKey != "Shanghai → Rotterdam" {
		t.Errorf("name sort order = %q, %q", byName.Routes[0].RouteKey, byName.Routes[1].RouteKey)
	}
}

func TestChartSelection(t *testing.T) {
	router := newTestRouter()
	postCSV(t, router, sampleCSV)

	var all dto.ChartResponse
	getJSON(t, router, "/chart", &all)
	// All three journeys use road; only Shanghai -> Rotterdam crosses water.
	if all.Road != 1300 || all.Sea != 1000 {
		t.Errorf("chart = %+v, want road=1300 sea=1000", all)
	}

	key := url.QueryEscape("Shanghai → Rotterdam")
	var one dto.ChartResponse
	getJSON(t, router, "/chart?route_key="+key, &one)
	if one.Road != 1000 || one.Sea != 1000 {
		t.Errorf("group chart = %+v, want road=1000 sea=1000", one)
	}

	rec := getJSON(t, router, "/chart?route_key=bogus", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
}

func TestJourneysDrilldown(t *testing.T) {
	router := newTestRouter()
	postCSV(t, router, sampleCSV)

	var all dto.ListJourneysResponse
	getJSON(t, router, "/journeys", &all)
	if len(all.Journeys) != 3 {
		t.Fatalf("journeys = %d, want 3", len(all.Journeys))
	}

	key := url.QueryEscape("London → Paris")
	var group dto.ListJourneysResponse
	getJSON(t, router, "/journeys?route_key="+key, &group)
	if len(group.Journeys) != 2 {
		t.Fatalf("group journeys = %d, want 2", len(group.Journeys))
	}
	if len(group.Journeys[0].Legs) != 1 || group.Journeys[0].Legs[0].Mode != "Road" {
		t.Errorf("legs = %+v, want single Road leg", group.Journeys[0].Legs)
	}
}

func TestIngestJSONBody(t *testing.T) {
	router := newTestRouter()

	body := `[{"origin":"London","destination":"Paris","weightKg":150},
		{"origin":"Oslo","destination":"Bergen","weightKg":"-50"}]`
	req := httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var ingest dto.IngestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &ingest); err != nil {
		t.Fatal(err)
	}
	if ingest.JourneyCount != 2 || len(ingest.RejectedRows) != 0 {
		t.Errorf("ingest = %+v, want 2 journeys and no rejects", ingest)
	}
}

func TestIngestAllRowsInvalidIsTerminal(t *testing.T) {
	router := newTestRouter()

	// Seed a good dataset first, then fail an upload entirely.
	postCSV(t, router, sampleCSV)

	bad := "origin,originCountry,destination,destinationCountry,weightKg\n,,Paris,,0\n"
	rec := postCSV(t, router, bad)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	// The previous dataset must stay active.
	var routes dto.ListRoutesResponse
	getJSON(t, router, "/routes", &routes)
	if len(routes.Routes) != 2 {
		t.Errorf("routes after failed upload = %d, want 2", len(routes.Routes))
	}
}

func TestIngestUnparseableBody(t *testing.T) {
	router := newTestRouter()

	rec := postCSV(t, router, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", rec.Code)
	}
}

func TestRoutesEmptyBeforeIngest(t *testing.T) {
	router := newTestRouter()

	var routes dto.ListRoutesResponse
	rec := getJSON(t, router, "/routes", &routes)
	if rec.Code != http.StatusOK || len(routes.Routes) != 0 {
		t.Errorf("status = %d routes = %d, want 200 and empty", rec.Code, len(routes.Routes))
	}

	var chart dto.ChartResponse
	getJSON(t, router, "/chart", &chart)
	if chart.Road != 0 || chart.Sea != 0 {
		t.Errorf("chart = %+v, want zeros", chart)
	}
}
