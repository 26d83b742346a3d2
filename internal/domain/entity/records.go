package entity

// Structured payload records. Each is created per-request, consumed once by a
// payload encoder, never persisted.

// ContactRecord maps onto a vCard 3.0 block.
type ContactRecord struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Organization string `json:"organization,omitempty"`
	Title        string `json:"title,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
	Address      string `json:"address,omitempty"`
}

// NetworkSecurity is the WiFi authentication type embedded in the payload.
type NetworkSecurity string

const (
	SecurityWPA    NetworkSecurity = "WPA"
	SecurityWEP    NetworkSecurity = "WEP"
	SecurityNopass NetworkSecurity = "nopass"
)

// NetworkCredential maps onto a WIFI: payload line.
type NetworkCredential struct {
	SSID     string          `json:"ssid" validate:"required"`
	Password string          `json:"password,omitempty"`
	Security NetworkSecurity `json:"security,omitempty" validate:"omitempty,oneof=WPA WEP nopass"`
	Hidden   bool            `json:"hidden,omitempty"`
}

// CalendarEvent maps onto a VEVENT block. StartDate and EndDate are parsed as
// RFC 3339 timestamps and re-rendered in UTC.
type CalendarEvent struct {
	Title       string `json:"title" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	AllDay      bool   `json:"allDay,omitempty"`
}
