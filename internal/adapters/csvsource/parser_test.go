package csvsource

import (
	"errors"
	"strings"
	"testing"
)

func TestParserParse(t *testing.T) {
	input := "origin,originCountry,destination,destinationCountry,weightKg\n" +
		"London,GB,Paris,FR,500\n" +
		"Shanghai,CN,Rotterdam,NL,-1200.5\n"

	records, err := NewParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	first := records[0]
	if first.Origin != "London" || first.Destination != "Paris" {
		t.Errorf("first record = %+v", first)
	}
	if first.OriginCountry != "GB" || first.DestinationCountry != "FR" {
		t.Errorf("countries = %q %q", first.OriginCountry, first.DestinationCountry)
	}

	// Weight must stay a string; coercion belongs to row validation.
	w, ok := records[1].WeightKg.(string)
	if !ok || w != "-1200.5" {
		t.Errorf("weight = %#v, want string %q", records[1].WeightKg, "-1200.5")
	}
}

func TestParserParseMissingOptionalColumns(t *testing.T) {
	input := "origin,destination,weightKg\nLondon,Paris,500\n"

	records, err := NewParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].OriginCountry != "" || records[0].DestinationCountry != "" {
		t.Errorf("absent country columns should decode empty, got %+v", records[0])
	}
}

func TestParserParseEmptyFields(t *testing.T) {
	input := "origin,originCountry,destination,destinationCountry,weightKg\n" +
		",,Paris,,\n"

	records, err := NewParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty fields pass through untouched for the validator to reject.
	if records[0].Origin != "" {
		t.Errorf("origin = %q, want empty", records[0].Origin)
	}
	if records[0].WeightKg != "" {
		t.Errorf("weight = %#v, want empty string", records[0].WeightKg)
	}
}

func TestParserParseEmptyInput(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestParserParseRaggedRow(t *testing.T) {
	input := "origin,originCountry,destination,destinationCountry,weightKg\n" +
		"London,GB,Paris\n"

	if _, err := NewParser().Parse(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for ragged row, got nil")
	}
}

func TestParserParseHeaderOnly(t *testing.T) {
	input := "origin,originCountry,destination,destinationCountry,weightKg\n"

	records, err := NewParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %d, want 0", len(records))
	}
}
