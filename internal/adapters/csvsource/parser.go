package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"shipment-insights-service/internal/ports"

	"github.com/jszwec/csvutil"
)

// ErrEmptyInput is returned when the uploaded file has no header row.
var ErrEmptyInput = errors.New("csv input is empty")

// shipmentRecord mirrors the expected upload header. The csv tags must match
// the header names exactly. Weight stays a string here so that row validation
// owns all numeric coercion, including signs and blanks.
type shipmentRecord struct {
	Origin             string `csv:"origin"`
	OriginCountry      string `csv:"originCountry"`
	Destination        string `csv:"destination"`
	DestinationCountry string `csv:"destinationCountry"`
	WeightKg           string `csv:"weightKg"`
}

// CSV-backed implementation of the RecordParser port.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// Parse reads header-prefixed CSV data and returns one raw record per data
// row. Decoder-level failures (no header, ragged rows) abort the whole
// upload; per-field problems are deliberately not checked here.
func (p *Parser) Parse(r io.Reader) ([]ports.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("parse shipments csv: read header: %w", err)
	}

	var recs []shipmentRecord
	if err := dec.Decode(&recs); err != nil {
		return nil, fmt.Errorf("parse shipments csv: decode rows: %w", err)
	}

	out := make([]ports.RawRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ports.RawRecord{
			Origin:             rec.Origin,
			OriginCountry:      rec.OriginCountry,
			Destination:        rec.Destination,
			DestinationCountry: rec.DestinationCountry,
			WeightKg:           rec.WeightKg,
		})
	}

	return out, nil
}
