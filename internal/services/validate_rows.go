package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"shipment-insights-service/internal/domain"
	"shipment-insights-service/internal/ports"
)

// Kind of a field-level validation failure.
type ErrorKind string

const (
	// Origin or destination empty after trimming.
	RequiredFieldMissing ErrorKind = "RequiredFieldMissing"
	// Weight missing, non-numeric, or not strictly positive after
	// normalization.
	InvalidWeight ErrorKind = "InvalidWeight"
)

// A single field-level failure within one row.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

// All failures for one rejected row. Row is 1-based for user-facing messages.
type ValidationError struct {
	Row    int
	Fields []FieldError
}

// Outcome of validating a batch of raw records. Both halves are always
// populated: a batch with failures still yields its valid subset.
type ValidationResult struct {
	ValidRows []domain.TransportRow
	Errors    []ValidationError
}

// ValidateRows normalizes and validates raw shipment records.
//
// Processing is per-row and independent: one row's failure never blocks
// another's success. A row may accumulate several field errors, but it either
// fully succeeds or is excluded from the valid subset entirely. Failures are
// collected and returned, never raised mid-batch.
func ValidateRows(records []ports.RawRecord) ValidationResult {
	result := ValidationResult{
		ValidRows: make([]domain.TransportRow, 0, len(records)),
	}

	for i, rec := range records {
		var fieldErrs []FieldError

		origin := strings.TrimSpace(rec.Origin)
		if origin == "" {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   "origin",
				Kind:    RequiredFieldMissing,
				Message: "Origin is required",
			})
		}

		destination := strings.TrimSpace(rec.Destination)
		if destination == "" {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   "destination",
				Kind:    RequiredFieldMissing,
				Message: "Destination is required",
			})
		}

		weight, weightErr := normalizeWeight(rec.WeightKg)
		if weightErr != nil {
			fieldErrs = append(fieldErrs, *weightErr)
		}

		if len(fieldErrs) > 0 {
			result.Errors = append(result.Errors, ValidationError{
				Row:    i + 1,
				Fields: fieldErrs,
			})
			continue
		}

		result.ValidRows = append(result.ValidRows, domain.TransportRow{
			Origin:             origin,
			OriginCountry:      strings.TrimSpace(rec.OriginCountry),
			Destination:        destination,
			DestinationCountry: strings.TrimSpace(rec.DestinationCountry),
			WeightKg:           weight,
		})
	}

	return result
}

// normalizeWeight coerces a raw weight into a positive number of kilograms.
//
// Numeric strings are accepted, including ones with a leading minus sign; the
// absolute value is taken rather than rejecting the row. Only a missing,
// non-numeric, non-finite, or zero weight fails.
func normalizeWeight(raw any) (float64, *FieldError) {
	if raw == nil {
		return 0, weightError("Weight is required")
	}

	var w float64
	switch v := raw.(type) {
	case float64:
		w = v
	case float32:
		w = float64(v)
	case int:
		w = float64(v)
	case int64:
		w = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, weightError("Weight must be a number")
		}
		w = f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, weightError("Weight is required")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, weightError("Weight must be a number")
		}
		w = f
	default:
		return 0, weightError("Weight must be a number")
	}

	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, weightError("Weight must be a number")
	}

	w = math.Abs(w)
	if w == 0 {
		return 0, weightError("Weight must be greater than zero")
	}

	return w, nil
}

func weightError(msg string) *FieldError {
	return &FieldError{Field: "weightKg", Kind: InvalidWeight, Message: msg}
}
