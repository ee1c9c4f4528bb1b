package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

func TestCheckStation_Valid(t *testing.T) {
	c, buf := newTestChecker()

	c.CheckStation(rlbpStation(), &models.Operator{Name: "EOST"})

	assert.Zero(t, c.rep.Errors(), buf.String())
	assert.Zero(t, c.rep.Warnings(), buf.String())
	assert.Contains(t, buf.String(), "Station code: CHMF")
	assert.Contains(t, buf.String(), "Operator organization: EOST")
	assert.Contains(t, buf.String(), "    Latitude: 48.0186 DEGREES")
}

func TestCheckStation_NotRunning(t *testing.T) {
	c, buf := newTestChecker()
	sta := rlbpStation()
	sta.Status = "Closed"

	c.CheckStation(sta, &models.Operator{Name: "EOST"})

	assert.Contains(t, buf.String(), "[error] current status is 'Closed'")
}

func TestCheckStation_WrongType(t *testing.T) {
	c, buf := newTestChecker()
	sta := rlbpStation()
	sta.Type = "Theoretical site"

	c.CheckStation(sta, &models.Operator{Name: "EOST"})

	assert.Contains(t, buf.String(), "[error] current type is 'Theoretical site'")
}

func TestCheckStation_EmptyGeology(t *testing.T) {
	c, buf := newTestChecker()
	sta := rlbpStation()
	sta.Geology = ""

	c.CheckStation(sta, &models.Operator{Name: "EOST"})

	assert.Contains(t, buf.String(), "[warning] geology not filled")
	assert.Equal(t, 1, c.rep.Warnings())
	assert.Zero(t, c.rep.Errors())
}

func TestCheckStation_UnknownOperator(t *testing.T) {
	c, buf := newTestChecker()

	c.CheckStation(rlbpStation(), &models.Operator{Name: "Unknown"})

	assert.Contains(t, buf.String(), "[error] operator unknown")
}

func TestCheckStation_NilOperator(t *testing.T) {
	c, buf := newTestChecker()

	c.CheckStation(rlbpStation(), nil)

	assert.Contains(t, buf.String(), "Operator organization: null")
	assert.Contains(t, buf.String(), "[error] operator unknown")
}

func TestCheckStation_NullLatitude(t *testing.T) {
	c, buf := newTestChecker()
	sta := rlbpStation()
	sta.Latitude = nil

	c.CheckStation(sta, &models.Operator{Name: "EOST"})

	assert.Contains(t, buf.String(), "[error] latitude is null")
	assert.Contains(t, buf.String(), "    Latitude: null DEGREES")
}
