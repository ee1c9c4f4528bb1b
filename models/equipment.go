package models

// Equipment is a piece of hardware installed at a station.
type Equipment struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

// IPAddress is a network address configured on a piece of equipment,
// typically the station modem.
type IPAddress struct {
	IP        string `json:"ip"`
	Netmask   string `json:"netmask"`
	Equipment string `json:"equipment"`
}

// Service is a network service exposed by a piece of equipment.
type Service struct {
	Protocol    string `json:"protocol"`
	Port        int    `json:"port"`
	Description string `json:"description"`
	Equipment   string `json:"equipment"`
}
