package models

// Document is an administrative or technical file attached to a station.
type Document struct {
	// Doctype is the document category ("Lease", "Datasheet", ...).
	Doctype string `json:"doctype"`

	// Title is the document title.
	Title string `json:"title"`

	// Link is the download URL.
	Link string `json:"link"`

	// Station is the URL of the station record the document belongs to.
	Station string `json:"station"`
}
