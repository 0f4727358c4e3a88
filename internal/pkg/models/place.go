package models

import (
	"fmt"
	"strings"
)

// LocationPoint is a named geographic point picked by the user
type LocationPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label,omitempty"`
}

// SameCoordinates reports whether both points sit on exactly the same coordinate
func (p LocationPoint) SameCoordinates(other LocationPoint) bool {
	return p.Lat == other.Lat && p.Lng == other.Lng
}

// SameLabel compares labels the way users perceive them: trimmed and case-insensitive.
// Two empty labels never match.
func (p LocationPoint) SameLabel(other LocationPoint) bool {
	a := strings.TrimSpace(p.Label)
	b := strings.TrimSpace(other.Label)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// Valid checks the coordinate ranges
func (p LocationPoint) Valid() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %f", ErrInvalidLocation, p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %f", ErrInvalidLocation, p.Lng)
	}
	return nil
}

// FrequentPoint is one entry of the ordered "frequently visited" list
type FrequentPoint struct {
	ID    string        `json:"id"`
	Point LocationPoint `json:"point"`
}

// TransportMode is the fixed set of supported travel modes
type TransportMode string

const (
	ModeCar     TransportMode = "car"
	ModeBike    TransportMode = "bike"
	ModeWalk    TransportMode = "walk"
	ModeTransit TransportMode = "transit"
)

// Valid reports whether the mode is one of the enumerated modes
func (m TransportMode) Valid() bool {
	switch m {
	case ModeCar, ModeBike, ModeWalk, ModeTransit:
		return true
	}
	return false
}

// ParseTransportMode parses a mode name, case-insensitively
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}
