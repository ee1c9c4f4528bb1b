package validation

import (
	"bytes"
	"strings"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

func newTestChecker() (*Checker, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewChecker(NewReporter(&buf, false)), &buf
}

func sp(s string) *string { return &s }

// countLines returns the number of output lines containing substr.
func countLines(buf *bytes.Buffer, substr string) int {
	count := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, substr) {
			count++
		}
	}
	return count
}

const (
	testNetworkURL     = "https://gissmo.test/api/v1/networks/1/"
	testSiteURL        = "https://gissmo.test/api/v1/sites/42/"
	testVelocimeterURL = "https://gissmo.test/api/v1/equipments/1/"
	testDataloggerURL  = "https://gissmo.test/api/v1/equipments/2/"
)

// rlbpChannel builds an open FR/00 velocimetric channel that passes every
// check when combined with rlbpStation.
func rlbpChannel(id int, code, azimuth, dip, sampleRate string) models.Channel {
	return models.Channel{
		ID:               id,
		Code:             code,
		LocationCode:     "00",
		Network:          testNetworkURL,
		Station:          testSiteURL,
		Latitude:         sp("48.0186"),
		Longitude:        sp("2.2660"),
		Elevation:        sp("125.0"),
		LatitudeUnit:     sp("DEGREES"),
		LongitudeUnit:    sp("DEGREES"),
		ElevationUnit:    sp("METERS"),
		Depth:            sp("0.0"),
		DepthUnit:        sp("METERS"),
		Azimuth:          sp(azimuth),
		AzimuthUnit:      sp("DEGREES"),
		Dip:              sp(dip),
		DipUnit:          sp("DEGREES"),
		SampleRate:       sp(sampleRate),
		SampleRateUnit:   sp("SAMPLES/S"),
		ClockDrift:       sp("0.0001"),
		ClockDriftUnit:   sp("SECONDS/SAMPLE"),
		CalibrationUnits: sp("M/S"),
		Datatypes:        []string{"CONTINUOUS", "GEOPHYSICAL"},
		StorageFormat:    sp("Steim2"),
		Equipments:       []string{testVelocimeterURL, testDataloggerURL},
	}
}

func rlbpStation() *models.Station {
	return &models.Station{
		ID:            42,
		Code:          "CHMF",
		Name:          "Chambon-la-Foret",
		Latitude:      sp("48.0186"),
		Longitude:     sp("2.2660"),
		Elevation:     sp("125.0"),
		LatitudeUnit:  sp("DEGREES"),
		LongitudeUnit: sp("DEGREES"),
		ElevationUnit: sp("METERS"),
		Type:          "Measuring site",
		Status:        "Running",
		Geology:       "limestone",
		Operator:      "https://gissmo.test/api/v1/organizations/1/",
	}
}

// rlbpChannelSet builds a fully consistent velocimetric group: the HH and
// LH triplets with matching orientations, identical shared attributes and
// identical instrument parameters.
func rlbpChannelSet() *ChannelSet {
	channels := []models.Channel{
		rlbpChannel(1, "HHZ", "0.0", "-90.0", "100.0"),
		rlbpChannel(2, "HHN", "0.0", "0.0", "100.0"),
		rlbpChannel(3, "HHE", "90.0", "0.0", "100.0"),
		rlbpChannel(4, "LHZ", "0.0", "-90.0", "1.0"),
		rlbpChannel(5, "LHN", "0.0", "0.0", "1.0"),
		rlbpChannel(6, "LHE", "90.0", "0.0", "1.0"),
	}

	parameters := make(map[int][]models.ChannelParameter)
	for _, c := range channels {
		parameters[c.ID] = []models.ChannelParameter{
			{Channel: testSiteURL, Model: "Trillium 120", Parameter: "gain", Value: "1202"},
		}
	}

	return &ChannelSet{
		Station:      rlbpStation(),
		Channels:     channels,
		NetworkCodes: map[string]string{testNetworkURL: "FR"},
		Equipments: map[string]*models.Equipment{
			testVelocimeterURL: {ID: 1, Type: "Velocimeter", Name: "Trillium 120", SerialNumber: "T120-0042", Status: "Running"},
			testDataloggerURL:  {ID: 2, Type: "Datalogger", Name: "Q330", SerialNumber: "Q330-0007", Status: "Running"},
		},
		Parameters: parameters,
	}
}
