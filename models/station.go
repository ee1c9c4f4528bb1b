// Package models defines the Gissmo inventory records consumed by the
// station checker.
//
// All types mirror the JSON payloads of the Gissmo REST API. The API is
// built on Django REST framework, which serialises decimal fields as JSON
// strings and absent values as null; numeric-looking fields are therefore
// declared as *string and parsed at validation time. Related records are
// hyperlinked: fields such as Station.Operator or Channel.Network hold the
// absolute URL of the referenced resource.
package models

// Station is a fixed seismic monitoring site.
type Station struct {
	// ID is the numeric database identifier of the site.
	ID int `json:"id"`

	// Code is the short station code (e.g. "CHMF").
	Code string `json:"code"`

	// Name is the human-readable site name.
	Name string `json:"name"`

	// Latitude, Longitude and Elevation are decimal strings; nil when the
	// value was never filled in.
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
	Elevation *string `json:"elevation"`

	// Units of the three coordinates above.
	LatitudeUnit  *string `json:"latitude_unit"`
	LongitudeUnit *string `json:"longitude_unit"`
	ElevationUnit *string `json:"elevation_unit"`

	// Type is the site classification; a deployed station reads
	// "Measuring site".
	Type string `json:"type"`

	// Status is the operational status; "Running" for a live station.
	Status string `json:"status"`

	// Geology describes the ground the sensor sits on.
	Geology string `json:"geology"`

	// Operator is the URL of the operating organization record.
	Operator string `json:"operator"`
}

// Operator is the organization running a station.
type Operator struct {
	Name string `json:"name"`
}
