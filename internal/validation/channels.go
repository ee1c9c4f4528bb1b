package validation

import (
	"fmt"
	"math"
	"slices"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// ChannelSet bundles one station's channel records with every related
// record the channel checks compare against, resolved up front so the
// validators stay free of I/O.
type ChannelSet struct {
	// Station is the record the channels belong to.
	Station *models.Station

	// Channels holds every channel of the station, open or closed.
	Channels []models.Channel

	// NetworkCodes maps a network URL to its code ("FR").
	NetworkCodes map[string]string

	// Equipments maps an equipment URL to its record, for the equipment
	// URLs appearing on kept channels.
	Equipments map[string]*models.Equipment

	// Parameters maps a channel ID to its instrument parameters, for the
	// kept channels.
	Parameters map[int][]models.ChannelParameter
}

// KeptChannels filters to the channels the RLBP checks apply to: still
// open, on network FR, location code 00, velocimetric instrument code 'H'.
func KeptChannels(channels []models.Channel, networkCodes map[string]string) []models.Channel {
	var kept []models.Channel
	for i := range channels {
		c := &channels[i]
		if c.Open() && networkCodes[c.Network] == "FR" &&
			c.LocationCode == "00" && c.InstrumentCode() == 'H' {
			kept = append(kept, *c)
		}
	}
	return kept
}

// CheckChannels validates the velocimetric channel group of a station:
// presence of the mandatory HH triplet, cross-stream consistency with the
// HH channels, attribute identity across the group, miniSEED standards per
// channel and parameter consistency against the HHZ baseline. It finishes
// with a summary of the group.
func (c *Checker) CheckChannels(set *ChannelSet) {
	c.rep.Printf("Velocimetric channels affiliated to RLBP network (net='FR', loc='00', cha='?H?'):")

	if len(set.Channels) == 0 {
		c.rep.Errorf("no channel related to this station")
		return
	}

	kept := KeptChannels(set.Channels, set.NetworkCodes)
	if len(kept) == 0 {
		c.rep.Errorf("available channels are not affiliated to RLBP network")
		return
	}

	// Every channel of the station, kept or not, must point at the same
	// station record.
	c.checkScalarAttribute("station", set.Channels, func(ch *models.Channel) *string {
		s := ch.Station
		return &s
	})

	hhCount, lhCount := 0, 0
	for i := range kept {
		switch kept[i].StreamCode() {
		case "HH":
			hhCount++
		case "LH":
			lhCount++
		}
	}

	if hhCount != 3 {
		c.rep.Errorf("no or missing 'HH' channels, mandatory")
		return
	}
	if lhCount != 3 {
		c.rep.Warnf("no or missing 'LH' channels")
	}

	byCode := make(map[string]*models.Channel, len(kept))
	for i := range kept {
		byCode[kept[i].Code] = &kept[i]
	}

	for i := range kept {
		ch := &kept[i]
		c.checkAgainstHH(ch, byCode)
	}

	c.checkSharedAttributes(kept)

	baseline, baselineFound := c.hhzBaseline(kept, set.Parameters)

	for i := range kept {
		ch := &kept[i]
		c.checkChannelStandard(ch, set.Equipments)
		c.checkPosition(channelCoordinates(ch))

		if !equalStringPtr(ch.Latitude, set.Station.Latitude) ||
			!equalStringPtr(ch.Longitude, set.Station.Longitude) ||
			!equalStringPtr(ch.Elevation, set.Station.Elevation) {
			c.rep.Warnf("%s channel position differs from station position", ch.Code)
		}

		params := set.Parameters[ch.ID]
		if len(params) == 0 {
			c.rep.Errorf("no parameters at channel %s", ch.Code)
		} else if baselineFound {
			if !slices.Equal(sortedParameterValues(params), baseline) {
				c.rep.Errorf("parameters not consistent for channel %s", ch.Code)
			}
		}
	}

	c.printChannelSummary(set, kept)
}

// checkAgainstHH verifies that a channel has an HH counterpart with the
// same orientation, matching azimuth and dip, and that a north-pointing
// component has an east companion rotated by exactly 90 degrees.
func (c *Checker) checkAgainstHH(ch *models.Channel, byCode map[string]*models.Channel) {
	if len(ch.Code) < 3 {
		c.rep.Errorf("component codes not consistent with HH at channel %s", ch.Code)
		return
	}

	hh, ok := byCode["HH"+ch.Code[2:]]
	if !ok {
		c.rep.Errorf("component codes not consistent with HH at channel %s", ch.Code)
		return
	}

	if !equalStringPtr(ch.Azimuth, hh.Azimuth) {
		c.rep.Errorf("azimuth not consistent with HH at channel %s", ch.Code)
	}
	if !equalStringPtr(ch.Dip, hh.Dip) {
		c.rep.Errorf("dip not consistent with HH at channel %s", ch.Code)
	}

	var eastCode string
	switch ch.Orientation() {
	case '1':
		eastCode = ch.Code[:len(ch.Code)-1] + "2"
	case 'N':
		eastCode = ch.Code[:len(ch.Code)-1] + "E"
	default:
		return
	}

	east, ok := byCode[eastCode]
	if !ok || !horizontalPairConsistent(ch.Azimuth, east.Azimuth) {
		c.rep.Errorf("azimuth not consistent between horizontal channels, check %s", ch.StreamCode())
	}
}

// horizontalPairConsistent checks east azimuth == (north azimuth + 90)
// mod 360. Both sides are formatted to one decimal before comparison so
// "100.0" and "100.00" agree; a missing or unparsable azimuth fails.
func horizontalPairConsistent(north, east *string) bool {
	n := parseDecimal(north)
	e := parseDecimal(east)
	if n == nil || e == nil {
		return false
	}
	want := math.Mod(*n+90, 360)
	return fmt.Sprintf("%.1f", want) == fmt.Sprintf("%.1f", *e)
}

// checkSharedAttributes verifies the attributes that must be identical
// across all channels of the velocimetric group.
func (c *Checker) checkSharedAttributes(kept []models.Channel) {
	scalars := []struct {
		name string
		get  func(*models.Channel) *string
	}{
		{"depth", func(ch *models.Channel) *string { return ch.Depth }},
		{"depth_unit", func(ch *models.Channel) *string { return ch.DepthUnit }},
		{"latitude", func(ch *models.Channel) *string { return ch.Latitude }},
		{"latitude_unit", func(ch *models.Channel) *string { return ch.LatitudeUnit }},
		{"longitude", func(ch *models.Channel) *string { return ch.Longitude }},
		{"longitude_unit", func(ch *models.Channel) *string { return ch.LongitudeUnit }},
		{"elevation", func(ch *models.Channel) *string { return ch.Elevation }},
		{"elevation_unit", func(ch *models.Channel) *string { return ch.ElevationUnit }},
		{"clock_drift", func(ch *models.Channel) *string { return ch.ClockDrift }},
		{"clock_drift_unit", func(ch *models.Channel) *string { return ch.ClockDriftUnit }},
		{"sample_rate_unit", func(ch *models.Channel) *string { return ch.SampleRateUnit }},
		{"calibration_units", func(ch *models.Channel) *string { return ch.CalibrationUnits }},
		{"storage_format", func(ch *models.Channel) *string { return ch.StorageFormat }},
	}
	for _, attr := range scalars {
		c.checkScalarAttribute(attr.name, kept, attr.get)
	}

	c.checkListAttribute("datatypes", kept, func(ch *models.Channel) []string { return ch.Datatypes })
	c.checkListAttribute("equipments", kept, func(ch *models.Channel) []string { return ch.Equipments })
}

// checkScalarAttribute reports when a single-valued attribute differs
// anywhere in the group. Two nil values count as equal.
func (c *Checker) checkScalarAttribute(name string, channels []models.Channel, get func(*models.Channel) *string) {
	if len(channels) == 0 {
		return
	}
	first := get(&channels[0])
	for i := 1; i < len(channels); i++ {
		if !equalStringPtr(first, get(&channels[i])) {
			c.rep.Errorf("%s are not consistent between channels", name)
			return
		}
	}
}

// checkListAttribute reports when a list-valued attribute differs anywhere
// in the group. Lists are compared as multisets: element order carries no
// meaning in the API payloads.
func (c *Checker) checkListAttribute(name string, channels []models.Channel, get func(*models.Channel) []string) {
	if len(channels) == 0 {
		return
	}
	first := get(&channels[0])
	for i := 1; i < len(channels); i++ {
		if !multisetEqual(first, get(&channels[i])) {
			c.rep.Errorf("%s are not consistent between channels", name)
			return
		}
	}
}

// hhzBaseline returns the sorted parameter values of the HHZ channel, the
// reference the other channels are compared against. With duplicate HHZ
// records the last one wins, as the historic behaviour had it, but the
// ambiguity is now reported.
func (c *Checker) hhzBaseline(kept []models.Channel, parameters map[int][]models.ChannelParameter) ([]string, bool) {
	var baseline []string
	found := false
	duplicates := 0

	for i := range kept {
		if kept[i].Code != "HHZ" {
			continue
		}
		if found {
			duplicates++
		}
		baseline = sortedParameterValues(parameters[kept[i].ID])
		found = true
	}

	if duplicates > 0 {
		c.rep.Warnf("multiple HHZ channels found, keeping the last one as parameter reference")
	}
	return baseline, found
}

// checkChannelStandard applies the miniSEED conventions to one channel:
// azimuth windows per orientation, fixed dip per orientation, fixed sample
// rate per band and location, mandatory datatypes and mandatory equipment
// types.
func (c *Checker) checkChannelStandard(ch *models.Channel, equipments map[string]*models.Equipment) {
	code := ch.Code

	if az := parseDecimal(ch.Azimuth); az == nil {
		c.rep.Errorf("azimuth is %s at channel %s", strOrNull(ch.Azimuth), code)
	} else if *az < 0 || *az > 360 {
		c.rep.Errorf("%.2f (should be in [0, 360]) not a consistent azimuth at channel %s", *az, code)
	} else {
		switch ch.Orientation() {
		case 'E':
			if math.Abs(*az-90) > 5 {
				c.rep.Errorf("%.2f (should be in [85, 95]) not a consistent azimuth at channel %s", *az, code)
			}
		case 'N':
			if *az > 5 && *az < 355 {
				c.rep.Errorf("%.2f (should not be in [5, 355]) not a consistent azimuth at channel %s", *az, code)
			}
		case '1':
			if *az < 5 || *az > 355 {
				c.rep.Errorf("azimuth is %.2f, component should be 'N'", *az)
			}
		case '2':
			if math.Abs(*az-90) < 5 {
				c.rep.Errorf("%.2f (should not be in [85, 95]) not a consistent azimuth at channel %s", *az, code)
			}
		case 'Z':
			if *az != 0 {
				c.rep.Errorf("%.2f (should be '0.0') not a consistent azimuth at channel %s", *az, code)
			}
		}
	}

	if dip := parseDecimal(ch.Dip); dip == nil {
		c.rep.Errorf("dip is %s at channel %s", strOrNull(ch.Dip), code)
	} else {
		switch ch.Orientation() {
		case 'E', 'N', '1', '2':
			if *dip != 0 {
				c.rep.Errorf("%.2f (should be '0.0') not a consistent dip at channel %s", *dip, code)
			}
		case 'Z':
			if *dip != -90 {
				c.rep.Errorf("%.2f (should be '-90.0') not a consistent dip at channel %s", *dip, code)
			}
		}
	}

	sr := parseDecimal(ch.SampleRate)
	switch {
	case ch.BandCode() == 'L' && ch.LocationCode == "00":
		if sr == nil || *sr != 1 {
			c.rep.Errorf("%s (should be '1.0') not a consistent sample rate at channel %s", strOrNull(ch.SampleRate), code)
		}
	case ch.BandCode() == 'H' && ch.LocationCode == "00":
		if sr == nil || *sr != 100 {
			c.rep.Errorf("%s (should be '100.0') not a consistent sample rate at channel %s", strOrNull(ch.SampleRate), code)
		}
	}

	for _, want := range []string{"CONTINUOUS", "GEOPHYSICAL"} {
		if !slices.Contains(ch.Datatypes, want) {
			c.rep.Errorf("'%s' not in datatypes at channel %s", want, code)
		}
	}

	seen := make(map[string]bool)
	for _, url := range ch.Equipments {
		if eq := equipments[url]; eq != nil {
			seen[eq.Type] = true
		}
	}
	for _, want := range []string{"Velocimeter", "Datalogger"} {
		if !seen[want] {
			c.rep.Errorf("%s missing at channel %s", want, code)
		}
	}
}

// printChannelSummary prints the stream identifiers of the group and the
// shared instrument block taken from the HH channels.
func (c *Checker) printChannelSummary(set *ChannelSet, kept []models.Channel) {
	for i := range kept {
		ch := &kept[i]
		c.rep.Printf("    FR.%s.%s.%s", set.Station.Code, ch.LocationCode, ch.Code)
		if ch.Orientation() == 'Z' {
			c.rep.Printf("        Sample rate: %s %s", strOrNull(ch.SampleRate), strOrNull(ch.SampleRateUnit))
		}
	}

	var hhz, hhn *models.Channel
	for i := range kept {
		switch kept[i].Code {
		case "HHZ":
			hhz = &kept[i]
		case "HH1", "HHN":
			hhn = &kept[i]
		}
	}
	if hhz == nil {
		return
	}

	var velocimeter, datalogger *models.Equipment
	for _, url := range hhz.Equipments {
		eq := set.Equipments[url]
		if eq == nil {
			continue
		}
		switch eq.Type {
		case "Velocimeter":
			velocimeter = eq
		case "Datalogger":
			datalogger = eq
		}
	}

	c.rep.Printf("    All velocimetric channels:")
	c.rep.Printf("        Latitude: %s %s", strOrNull(hhz.Latitude), strOrNull(hhz.LatitudeUnit))
	c.rep.Printf("        Longitude: %s %s", strOrNull(hhz.Longitude), strOrNull(hhz.LongitudeUnit))
	c.rep.Printf("        Elevation: %s %s", strOrNull(hhz.Elevation), strOrNull(hhz.ElevationUnit))
	c.rep.Printf("        Depth: %s %s", strOrNull(hhz.Depth), strOrNull(hhz.DepthUnit))
	if hhn != nil {
		c.rep.Printf("        Azimuth: %s %s", strOrNull(hhn.Azimuth), strOrNull(hhn.AzimuthUnit))
	}
	c.rep.Printf("        Vertical dip: %s %s", strOrNull(hhz.Dip), strOrNull(hhz.DipUnit))

	if velocimeter != nil {
		c.rep.Printf("        Velocimeter: %s #%s", velocimeter.Name, velocimeter.SerialNumber)
	}
	if datalogger != nil {
		c.rep.Printf("        Datalogger: %s #%s", datalogger.Name, datalogger.SerialNumber)
	}

	if len(hhz.Datatypes) > 0 {
		c.rep.Printf("        Datatypes:")
		for _, d := range hhz.Datatypes {
			c.rep.Printf("            %s", d)
		}
	}

	if params := set.Parameters[hhz.ID]; len(params) > 0 {
		c.rep.Printf("        Instrument parameters:")
		for _, p := range params {
			c.rep.Printf("            %s %s %s", p.Model, p.Parameter, p.Value)
		}
	}
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// multisetEqual reports whether two slices hold the same elements with the
// same multiplicities, regardless of order. Neither input is modified.
func multisetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}

// sortedParameterValues returns the parameter values in sorted order,
// leaving the input untouched. Sorting only makes the comparison
// order-independent; reported content never changes.
func sortedParameterValues(params []models.ChannelParameter) []string {
	values := make([]string, 0, len(params))
	for _, p := range params {
		values = append(values, p.Value)
	}
	slices.Sort(values)
	return values
}
