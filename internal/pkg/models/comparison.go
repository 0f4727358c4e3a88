package models

import (
	"encoding/json"
	"math"
)

// ComparisonRequest is the input of one comparison cycle
type ComparisonRequest struct {
	Origins []FrequentPoint `json:"origins"`
	Work    *LocationPoint  `json:"work,omitempty"`
	Home    *LocationPoint  `json:"home,omitempty"`
	Mode    TransportMode   `json:"mode"`
}

// ComparisonRow holds travel time and distance from one origin to work and home.
// Missing values are NaN.
type ComparisonRow struct {
	OriginID           string
	Label              string
	WorkMinutes        float64
	WorkDistanceMeters float64
	HomeMinutes        float64
	HomeDistanceMeters float64
}

// NewComparisonRow returns a row with every value missing
func NewComparisonRow(originID, label string) ComparisonRow {
	return ComparisonRow{
		OriginID:           originID,
		Label:              label,
		WorkMinutes:        math.NaN(),
		WorkDistanceMeters: math.NaN(),
		HomeMinutes:        math.NaN(),
		HomeDistanceMeters: math.NaN(),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// HasWork reports whether the work time is known
func (r ComparisonRow) HasWork() bool { return finite(r.WorkMinutes) }

// HasHome reports whether the home time is known
func (r ComparisonRow) HasHome() bool { return finite(r.HomeMinutes) }

// Complete reports whether both times are known
func (r ComparisonRow) Complete() bool { return r.HasWork() && r.HasHome() }

// Partial reports whether exactly one time is known
func (r ComparisonRow) Partial() bool { return r.HasWork() != r.HasHome() }

// Visible reports whether the row belongs in the published ranking
func (r ComparisonRow) Visible() bool { return r.HasWork() || r.HasHome() }

type comparisonRowJSON struct {
	OriginID           string   `json:"origin_id"`
	Label              string   `json:"label"`
	WorkMinutes        *float64 `json:"work_minutes"`
	WorkDistanceMeters *float64 `json:"work_distance_meters"`
	HomeMinutes        *float64 `json:"home_minutes"`
	HomeDistanceMeters *float64 `json:"home_distance_meters"`
}

func optional(v float64) *float64 {
	if !finite(v) {
		return nil
	}
	return &v
}

func fromOptional(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// MarshalJSON encodes missing values as null
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(comparisonRowJSON{
		OriginID:           r.OriginID,
		Label:              r.Label,
		WorkMinutes:        optional(r.WorkMinutes),
		WorkDistanceMeters: optional(r.WorkDistanceMeters),
		HomeMinutes:        optional(r.HomeMinutes),
		HomeDistanceMeters: optional(r.HomeDistanceMeters),
	})
}

// UnmarshalJSON decodes null values as NaN
func (r *ComparisonRow) UnmarshalJSON(data []byte) error {
	var raw comparisonRowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ComparisonRow{
		OriginID:           raw.OriginID,
		Label:              raw.Label,
		WorkMinutes:        fromOptional(raw.WorkMinutes),
		WorkDistanceMeters: fromOptional(raw.WorkDistanceMeters),
		HomeMinutes:        fromOptional(raw.HomeMinutes),
		HomeDistanceMeters: fromOptional(raw.HomeDistanceMeters),
	}
	return nil
}

// ComparisonState is the externally visible state of the comparison engine
type ComparisonState struct {
	Generation uint64          `json:"generation"`
	Computing  bool            `json:"computing"`
	Rows       []ComparisonRow `json:"rows"`
}

// ComparisonEvent is published whenever a generation's rows become visible
type ComparisonEvent struct {
	Generation  uint64          `json:"generation"`
	Mode        TransportMode   `json:"mode"`
	Rows        []ComparisonRow `json:"rows"`
	PublishedAt string          `json:"published_at"`
}
