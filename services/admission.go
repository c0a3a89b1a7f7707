package services

import "github.com/aguspuryanto/geoface-attendance-lite/geo"

// Decision is the admission gate's read-only verdict on one check-in attempt.
type Decision struct {
	Distance float64 `json:"distance"`
	Admitted bool    `json:"admitted"`
}

// EvaluateAdmission measures the device position against the office geofence.
// The boundary is inclusive: a device exactly at the radius is admitted.
// It never touches the ledger; the caller rejects the request on a negative
// decision. Callers must resolve the device location first — a missing
// location blocks the attempt before this gate runs.
func EvaluateAdmission(s OfficeSettings, lat, lng float64) Decision {
	d := geo.Distance(lat, lng, s.Lat, s.Lng)
	return Decision{Distance: d, Admitted: d <= s.Radius}
}
