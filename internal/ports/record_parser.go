package ports

import "io"

// One loosely typed shipment record as produced by an external tokenizer
// (CSV upload, JSON body), before any validation has run.
//
// WeightKg is deliberately untyped: delimited sources deliver strings while
// JSON delivers numbers, and row validation owns the coercion of both.
type RawRecord struct {
	Origin             string
	OriginCountry      string
	Destination        string
	DestinationCountry string
	WeightKg           any
}

// Contract for turning an uploaded byte stream into raw shipment records.
type RecordParser interface {
	// Parse reads the full input and returns one RawRecord per data row.
	// Structural failures (missing header, ragged rows) abort the whole
	// input; per-field problems are left to row validation.
	Parse(r io.Reader) ([]RawRecord, error)
}
