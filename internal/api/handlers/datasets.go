package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"shipment-insights-service/internal/api/dto"
	"shipment-insights-service/internal/domain"
	"shipment-insights-service/internal/logger"
	"shipment-insights-service/internal/platform/obs"
	"shipment-insights-service/internal/ports"
	"shipment-insights-service/internal/services"
)

// DatasetHandler runs the ingestion pipeline: decode upload, validate rows,
// aggregate, and swap the result into the store.
type DatasetHandler struct {
	Parser         ports.RecordParser
	Store          ports.DatasetStore
	Log            *logger.Logger
	MaxUploadBytes int64
}

// Ingest accepts shipment records as a raw CSV body, a multipart form with a
// "file" part, or a JSON array. Validation failures never abort the batch:
// the valid subset is aggregated and the rejected rows are reported back.
// When no row validates the run is terminal and the previous dataset stays
// active.
func (h *DatasetHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	defer r.Body.Close()

	records, err := h.decodeRecords(r)
	if err != nil {
		h.Log.Warn("ingest rejected", "err", err)
		writeError(w, r, http.StatusBadRequest, "could not read shipment records")
		return
	}

	result := services.ValidateRows(records)
	rejected := rejectedRows(result.Errors)

	if len(result.ValidRows) == 0 {
		writeJSON(w, r, http.StatusUnprocessableEntity, dto.IngestResponse{
			RejectedRows: rejected,
		})
		return
	}

	ds := h.process(r.Context(), result.ValidRows)
	h.Store.Replace(ds)

	writeJSON(w, r, http.StatusOK, dto.IngestResponse{
		JourneyCount:    len(ds.Journeys),
		RouteGroupCount: len(ds.RouteGroups),
		RejectedRows:    rejected,
	})
}

func (h *DatasetHandler) process(ctx context.Context, rows []domain.TransportRow) *domain.Dataset {
	defer obs.Time(ctx, h.Log, "pipeline.process")(nil)
	return services.ProcessShipments(rows)
}

// decodeRecords picks the tokenizer for the request's media type. Per-field
// problems are left to row validation; only structural failures error here.
func (h *DatasetHandler) decodeRecords(r *http.Request) ([]ports.RawRecord, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		mr, err := r.MultipartReader()
		if err != nil {
			return nil, fmt.Errorf("decode records: open multipart form: %w", err)
		}
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("decode records: read multipart form: %w", err)
			}
			if part.FormName() == "file" {
				defer part.Close()
				return h.Parser.Parse(part)
			}
		}
		return nil, errors.New("decode records: multipart form has no file part")

	case "application/json":
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		var reqs []dto.RawRecordRequest
		if err := dec.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("decode records: parse json body: %w", err)
		}

		records := make([]ports.RawRecord, 0, len(reqs))
		for _, req := range reqs {
			records = append(records, ports.RawRecord{
				Origin:             req.Origin,
				OriginCountry:      req.OriginCountry,
				Destination:        req.Destination,
				DestinationCountry: req.DestinationCountry,
				WeightKg:           req.WeightKg,
			})
		}
		return records, nil

	default:
		return h.Parser.Parse(r.Body)
	}
}

func rejectedRows(errs []services.ValidationError) []dto.RowErrorResponse {
	rejected := make([]dto.RowErrorResponse, 0, len(errs))
	for _, rowErr := range errs {
		fields := make([]dto.FieldErrorResponse, 0, len(rowErr.Fields))
		for _, fe := range rowErr.Fields {
			fields = append(fields, dto.FieldErrorResponse{
				Field:   fe.Field,
				Kind:    string(fe.Kind),
				Message: fe.Message,
			})
		}
		rejected = append(rejected, dto.RowErrorResponse{
			Row:    rowErr.Row,
			Errors: fields,
		})
	}
	return rejected
}
