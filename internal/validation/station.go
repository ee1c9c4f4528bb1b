package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// Checker runs the individual inventory validators. All findings go
// through its Reporter; checkers never return errors.
type Checker struct {
	rep      *Reporter
	validate *validator.Validate
}

// NewChecker creates a Checker reporting to rep.
func NewChecker(rep *Reporter) *Checker {
	return &Checker{
		rep:      rep,
		validate: validator.New(),
	}
}

// CheckStation prints the station header block and validates the
// station-level fields: position, status, type, geology and operator.
// operator may be nil when the operator record could not be resolved.
func (c *Checker) CheckStation(sta *models.Station, operator *models.Operator) {
	operatorName := "null"
	if operator != nil {
		operatorName = operator.Name
	}

	c.rep.Printf("Station code: %s", sta.Code)
	c.rep.Printf("Name: %s", sta.Name)
	c.rep.Printf("Position:")
	c.rep.Printf("    Latitude: %s %s", strOrNull(sta.Latitude), strOrNull(sta.LatitudeUnit))
	c.rep.Printf("    Longitude: %s %s", strOrNull(sta.Longitude), strOrNull(sta.LongitudeUnit))
	c.rep.Printf("    Elevation: %s %s", strOrNull(sta.Elevation), strOrNull(sta.ElevationUnit))
	c.rep.Printf("Type: %s", sta.Type)
	c.rep.Printf("Status: %s", sta.Status)
	c.rep.Printf("Geology: %s", sta.Geology)
	c.rep.Printf("Operator organization: %s", operatorName)

	c.checkPosition(stationCoordinates(sta))

	if sta.Status != "Running" {
		c.rep.Errorf("current status is '%s'", sta.Status)
	}

	if sta.Geology == "" {
		c.rep.Warnf("geology not filled")
	}

	if operator == nil || operator.Name == "Unknown" {
		c.rep.Errorf("operator unknown")
	}

	if sta.Type != "Measuring site" {
		c.rep.Errorf("current type is '%s'", sta.Type)
	}
}
