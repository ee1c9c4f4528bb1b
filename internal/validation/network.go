package validation

import (
	"strings"

	"github.com/mbdb/rlbp-gissmo-check/models"
)

// isPublicIP reports whether an address is reachable from outside the
// station LAN: not an RFC1918-looking prefix and declared with a 0.0.0.0
// netmask, the convention Gissmo uses for point-to-point WAN addresses.
func isPublicIP(ip *models.IPAddress) bool {
	return !strings.HasPrefix(ip.IP, "192.168") &&
		!strings.HasPrefix(ip.IP, "10.") &&
		ip.Netmask == "0.0.0.0"
}

// CheckIPs lists the public addresses configured on the network equipment
// and reports an error when none exists.
func (c *Checker) CheckIPs(ips []models.IPAddress) {
	c.rep.Printf("Wide Area Network configuration (found on the modem):")

	var public []models.IPAddress
	for i := range ips {
		if isPublicIP(&ips[i]) {
			public = append(public, ips[i])
		}
	}

	if len(public) == 0 {
		c.rep.Errorf("no public ip found, should be configured at modem level")
		return
	}
	for _, ip := range public {
		c.rep.Printf("    Public IP: %s", ip.IP)
	}
}

// CheckServices lists the network services exposed by the station and
// reports an error when none exists.
func (c *Checker) CheckServices(services []models.Service) {
	if len(services) == 0 {
		c.rep.Errorf("no network services available")
		return
	}
	for _, s := range services {
		c.rep.Printf("    %s available on port %d (%s)", s.Protocol, s.Port, s.Description)
	}
}
