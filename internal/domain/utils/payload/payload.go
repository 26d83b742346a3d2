// Package payload builds the canonical text payloads embedded into QR symbols.
// Every encoder is a pure, deterministic string builder with a fixed output
// grammar; absent optional fields emit no line at all.
package payload

import (
	"fmt"
	"strings"
	"time"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
)

// Contact renders a vCard 3.0 block.
func Contact(c entity.ContactRecord) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(&b, "FN:%s %s\n", c.FirstName, c.LastName)
	fmt.Fprintf(&b, "N:%s;%s;;;\n", c.LastName, c.FirstName)
	if c.Organization != "" {
		fmt.Fprintf(&b, "ORG:%s\n", c.Organization)
	}
	if c.Title != "" {
		fmt.Fprintf(&b, "TITLE:%s\n", c.Title)
	}
	if c.Phone != "" {
		fmt.Fprintf(&b, "TEL:%s\n", c.Phone)
	}
	if c.Email != "" {
		fmt.Fprintf(&b, "EMAIL:%s\n", c.Email)
	}
	if c.Website != "" {
		fmt.Fprintf(&b, "URL:%s\n", c.Website)
	}
	if c.Address != "" {
		fmt.Fprintf(&b, "ADR:%s\n", c.Address)
	}
	b.WriteString("END:VCARD")
	return b.String()
}

// Network renders the single-line WIFI: grammar. The password segment is
// present but empty for open networks.
func Network(n entity.NetworkCredential) string {
	security := n.Security
	if security == "" {
		security = entity.SecurityWPA
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;", security, n.SSID, n.Password, n.Hidden)
}

// Event renders a bare VEVENT block. Timestamps are re-rendered in UTC:
// YYYYMMDD for all-day events, YYYYMMDDTHHMMSSZ otherwise.
func Event(e entity.CalendarEvent) (string, error) {
	start, err := parseTimestamp(e.StartDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date %q: %w", e.StartDate, err)
	}

	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(&b, "SUMMARY:%s\n", e.Title)
	fmt.Fprintf(&b, "DTSTART:%s\n", formatTimestamp(start, e.AllDay))
	if e.EndDate != "" {
		end, err := parseTimestamp(e.EndDate)
		if err != nil {
			return "", fmt.Errorf("invalid end date %q: %w", e.EndDate, err)
		}
		fmt.Fprintf(&b, "DTEND:%s\n", formatTimestamp(end, e.AllDay))
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "DESCRIPTION:%s\n", e.Description)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "LOCATION:%s\n", e.Location)
	}
	b.WriteString("END:VEVENT")
	return b.String(), nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}

func formatTimestamp(t time.Time, allDay bool) string {
	t = t.UTC()
	if allDay {
		return t.Format("20060102")
	}
	return t.Format("20060102T150405Z")
}
