package validation

import (
	"strings"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// requiredEquipmentTypes are the hardware types every RLBP station needs,
// reported in this order when missing.
var requiredEquipmentTypes = []string{
	"Velocimeter",
	"Datalogger",
	"Armoire BT",
	"Armoire TBT",
	"Modem",
}

// isNetworkEquipment reports whether a piece of equipment provides the
// station's network link. Type names vary ("ADSL Modem", "Routeur 4G"),
// so the match is a case-insensitive substring.
func isNetworkEquipment(e *models.Equipment) bool {
	t := strings.ToLower(e.Type)
	return strings.Contains(t, "modem") || strings.Contains(t, "routeur")
}

// CheckEquipments lists the installed equipment, reports every required
// type that is absent and every equipment that is not running.
func (c *Checker) CheckEquipments(equipments []models.Equipment) {
	if len(equipments) == 0 {
		c.rep.Errorf("no equipment installed at this station")
		return
	}

	found := make(map[string]bool)

	c.rep.Printf("Current equipments:")
	for i := range equipments {
		e := &equipments[i]
		c.rep.Printf("    %s %s #%s %s", e.Type, e.Name, e.SerialNumber, e.Status)
		found[e.Type] = true
		if isNetworkEquipment(e) {
			found["Modem"] = true
		}
	}

	for i := range equipments {
		e := &equipments[i]
		if e.Status != "Running" {
			c.rep.Errorf("%s %s #%s current status is '%s'", e.Type, e.Name, e.SerialNumber, e.Status)
		}
	}

	for _, required := range requiredEquipmentTypes {
		if !found[required] {
			c.rep.Errorf("no %s installed at this station", required)
		}
	}
}
