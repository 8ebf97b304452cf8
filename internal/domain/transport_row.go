package domain

// Represents a single validated shipment record.
// A TransportRow is produced once per raw input record by row validation
// and is immutable afterwards. WeightKg is always finite and strictly
// positive; negative raw weights are normalized to their absolute value
// before a TransportRow exists.
type TransportRow struct {
	Origin             string
	OriginCountry      string
	Destination        string
	DestinationCountry string
	WeightKg           float64
}
