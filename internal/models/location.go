package models

import (
	"fmt"
	"strings"
)

// Location represents a place referenced by a segment (airport, hotel, venue, address)
type Location struct {
	Name        string       `json:"name"`
	Code        string       `json:"code,omitempty"` // Short identifier, e.g. IATA airport code
	Address     *Address     `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Address is a postal address, every field optional
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Coordinates is a WGS 84 point
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsUsable reports whether the location carries enough identity to be compared
func (l *Location) IsUsable() bool {
	if l == nil {
		return false
	}
	if strings.TrimSpace(l.Name) != "" || strings.TrimSpace(l.Code) != "" {
		return true
	}
	return l.Coordinates != nil && (l.Coordinates.Latitude != 0 || l.Coordinates.Longitude != 0)
}

// City returns the address city or an empty string
func (l *Location) City() string {
	if l == nil || l.Address == nil {
		return ""
	}
	return l.Address.City
}

// Country returns the address country or an empty string
func (l *Location) Country() string {
	if l == nil || l.Address == nil {
		return ""
	}
	return l.Address.Country
}

// Street returns the address street or an empty string
func (l *Location) Street() string {
	if l == nil || l.Address == nil {
		return ""
	}
	return l.Address.Street
}

// Label is the human readable name used in descriptions
func (l *Location) Label() string {
	if l == nil {
		return "unknown location"
	}
	name := strings.TrimSpace(l.Name)
	code := strings.TrimSpace(l.Code)
	switch {
	case name != "" && code != "" && !strings.Contains(strings.ToUpper(name), strings.ToUpper(code)):
		return name + " (" + code + ")"
	case name != "":
		return name
	case code != "":
		return code
	case l.Coordinates != nil:
		return fmt.Sprintf("%.4f, %.4f", l.Coordinates.Latitude, l.Coordinates.Longitude)
	}
	return "unknown location"
}
