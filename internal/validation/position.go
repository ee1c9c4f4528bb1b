package validation

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// position carries the parsed coordinates of a station or channel. The
// range constraints live in the struct tags; a field left nil (value
// missing or not a number) fails the required rule.
type position struct {
	Latitude  *float64 `validate:"required,gte=-90,lte=90"`
	Longitude *float64 `validate:"required,gte=-180,lte=180"`
	Elevation *float64 `validate:"required,gte=-11000,lte=9000"`
}

// coordinates is the raw coordinate block shared by stations and channels.
type coordinates struct {
	latitude, longitude, elevation             *string
	latitudeUnit, longitudeUnit, elevationUnit *string
}

func stationCoordinates(s *models.Station) coordinates {
	return coordinates{
		latitude: s.Latitude, longitude: s.Longitude, elevation: s.Elevation,
		latitudeUnit: s.LatitudeUnit, longitudeUnit: s.LongitudeUnit, elevationUnit: s.ElevationUnit,
	}
}

func channelCoordinates(c *models.Channel) coordinates {
	return coordinates{
		latitude: c.Latitude, longitude: c.Longitude, elevation: c.Elevation,
		latitudeUnit: c.LatitudeUnit, longitudeUnit: c.LongitudeUnit, elevationUnit: c.ElevationUnit,
	}
}

// parseDecimal converts an API decimal string to a float pointer. nil in,
// or an unparsable value, yields nil: absent and malformed are both
// validation failures, never a panic.
func parseDecimal(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// checkPosition validates a coordinate block: latitude, longitude and
// elevation in range and non-null, and all three units present.
func (c *Checker) checkPosition(pos coordinates) {
	p := position{
		Latitude:  parseDecimal(pos.latitude),
		Longitude: parseDecimal(pos.longitude),
		Elevation: parseDecimal(pos.elevation),
	}

	if err := c.validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			c.rep.Errorf("position not validatable: %v", err)
			return
		}
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Latitude":
				c.rep.Errorf("latitude is %s", strOrNull(pos.latitude))
			case "Longitude":
				c.rep.Errorf("longitude is %s", strOrNull(pos.longitude))
			case "Elevation":
				c.rep.Errorf("elevation is %s", strOrNull(pos.elevation))
			}
		}
	}

	if pos.latitudeUnit == nil {
		c.rep.Errorf("latitude unit is null")
	}
	if pos.longitudeUnit == nil {
		c.rep.Errorf("longitude unit is null")
	}
	if pos.elevationUnit == nil {
		c.rep.Errorf("elevation unit is null")
	}
}

func strOrNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
