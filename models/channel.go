package models

// Channel is one sensor data stream recorded at a station, identified by
// its band/instrument/orientation code (e.g. "HHZ").
type Channel struct {
	// ID is the numeric database identifier of the channel.
	ID int `json:"id"`

	// Code is the three-letter SEED channel code.
	Code string `json:"code"`

	// LocationCode distinguishes co-located sensor groups ("00", "01", ...).
	LocationCode string `json:"location_code"`

	// Network is the URL of the network record the channel belongs to.
	Network string `json:"network"`

	// Station is the URL of the owning station record.
	Station string `json:"station"`

	Latitude      *string `json:"latitude"`
	Longitude     *string `json:"longitude"`
	Elevation     *string `json:"elevation"`
	LatitudeUnit  *string `json:"latitude_unit"`
	LongitudeUnit *string `json:"longitude_unit"`
	ElevationUnit *string `json:"elevation_unit"`

	// Depth is the sensor burial depth below the surface.
	Depth     *string `json:"depth"`
	DepthUnit *string `json:"depth_unit"`

	// Azimuth of the sensor axis, clockwise from north, in degrees.
	Azimuth     *string `json:"azimuth"`
	AzimuthUnit *string `json:"azimuth_unit"`

	// Dip of the sensor axis, degrees down from horizontal.
	Dip     *string `json:"dip"`
	DipUnit *string `json:"dip_unit"`

	SampleRate     *string `json:"sample_rate"`
	SampleRateUnit *string `json:"sample_rate_unit"`

	ClockDrift     *string `json:"clock_drift"`
	ClockDriftUnit *string `json:"clock_drift_unit"`

	CalibrationUnits *string `json:"calibration_units"`

	// Datatypes is the set of data type tags ("CONTINUOUS", "GEOPHYSICAL").
	Datatypes []string `json:"datatypes"`

	StorageFormat *string `json:"storage_format"`

	// Equipments are the URLs of the equipment records wired to the channel.
	Equipments []string `json:"equipments"`

	StartDate *string `json:"start_date"`

	// EndDate is nil while the channel is still open.
	EndDate *string `json:"end_date"`
}

// Open reports whether the channel is currently recording.
func (c *Channel) Open() bool {
	return c.EndDate == nil
}

// BandCode returns the first letter of the channel code, which encodes the
// band and implies the expected sample rate.
func (c *Channel) BandCode() byte {
	if len(c.Code) == 0 {
		return 0
	}
	return c.Code[0]
}

// InstrumentCode returns the second letter of the channel code ('H' for a
// high-gain seismometer).
func (c *Channel) InstrumentCode() byte {
	if len(c.Code) < 2 {
		return 0
	}
	return c.Code[1]
}

// Orientation returns the trailing letter or digit of the channel code
// (Z, N, E, 1 or 2).
func (c *Channel) Orientation() byte {
	if len(c.Code) == 0 {
		return 0
	}
	return c.Code[len(c.Code)-1]
}

// StreamCode returns the band+instrument prefix of the code ("HH", "LH").
func (c *Channel) StreamCode() string {
	if len(c.Code) < 2 {
		return c.Code
	}
	return c.Code[:2]
}

// ChannelParameter is one configuration value of the instrument chain
// behind a channel (gain, full-scale voltage, ...).
type ChannelParameter struct {
	// Channel is the URL of the channel the parameter applies to.
	Channel string `json:"channel"`

	// Model is the equipment model the parameter belongs to.
	Model string `json:"model"`

	// Parameter is the parameter name.
	Parameter string `json:"parameter"`

	// Value is the configured value.
	Value string `json:"value"`
}

// Network is the seismic network a channel reports to.
type Network struct {
	Code string `json:"code"`
}
