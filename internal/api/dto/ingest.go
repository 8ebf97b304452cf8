package dto

// RawRecordRequest is one shipment record in a JSON ingest body. WeightKg is
// untyped so both numbers and numeric strings are accepted; row validation
// owns coercion.
type RawRecordRequest struct {
	Origin             string `json:"origin"`
	OriginCountry      string `json:"originCountry"`
	Destination        string `json:"destination"`
	DestinationCountry string `json:"destinationCountry"`
	WeightKg           any    `json:"weightKg"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type RowErrorResponse struct {
	Row    int                  `json:"row"`
	Errors []FieldErrorResponse `json:"errors"`
}

type IngestResponse struct {
	JourneyCount    int                `json:"journey_count"`
	RouteGroupCount int                `json:"route_group_count"`
	RejectedRows    []RowErrorResponse `json:"rejected_rows"`
}
