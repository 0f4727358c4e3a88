// Package projection turns ranked comparison rows into values ready for
// proportional display: bar scales sharing one maximum, color bands and
// human readable durations and distances.
package projection

import (
	"fmt"
	"math"
	"strconv"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// Band is the color classification of a travel time
type Band string

const (
	BandGood   Band = "good"
	BandMedium Band = "medium"
	BandBad    Band = "bad"
	BandNone   Band = ""
)

// Row is one comparison row prepared for display. Scales are in [0,1].
type Row struct {
	OriginID  string  `json:"origin_id"`
	Label     string  `json:"label"`
	Rank      int     `json:"rank"`
	Complete  bool    `json:"complete"`
	WorkScale float64 `json:"work_scale"`
	HomeScale float64 `json:"home_scale"`
	WorkBand  Band    `json:"work_band,omitempty"`
	HomeBand  Band    `json:"home_band,omitempty"`
	WorkTime  string  `json:"work_time,omitempty"`
	HomeTime  string  `json:"home_time,omitempty"`
	WorkKm    string  `json:"work_distance,omitempty"`
	HomeKm    string  `json:"home_distance,omitempty"`
	TotalTime string  `json:"total_time,omitempty"`
}

// View is the projection of a whole published list
type View struct {
	MaxMinutes float64 `json:"max_minutes"`
	Rows       []Row   `json:"rows"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SharedMaximum is the largest finite work or home time across all rows, 0 for none
func SharedMaximum(rows []models.ComparisonRow) float64 {
	maximum := 0.0
	for _, r := range rows {
		if finite(r.WorkMinutes) && r.WorkMinutes > maximum {
			maximum = r.WorkMinutes
		}
		if finite(r.HomeMinutes) && r.HomeMinutes > maximum {
			maximum = r.HomeMinutes
		}
	}
	return maximum
}

// Scale normalizes v against maximum. Non-finite values and a zero maximum scale to 0.
func Scale(v, maximum float64) float64 {
	if !finite(v) || maximum <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, v/maximum))
}

// Project prepares every row against the shared maximum of the list
func Project(rows []models.ComparisonRow) View {
	maximum := SharedMaximum(rows)
	view := View{MaxMinutes: maximum, Rows: make([]Row, 0, len(rows))}

	for i, r := range rows {
		row := Row{
			OriginID:  r.OriginID,
			Label:     r.Label,
			Rank:      i + 1,
			Complete:  r.Complete(),
			WorkScale: Scale(r.WorkMinutes, maximum),
			HomeScale: Scale(r.HomeMinutes, maximum),
			WorkBand:  Classify(r.WorkMinutes),
			HomeBand:  Classify(r.HomeMinutes),
			WorkTime:  FormatMinutes(r.WorkMinutes),
			HomeTime:  FormatMinutes(r.HomeMinutes),
			WorkKm:    FormatKilometers(r.WorkDistanceMeters),
			HomeKm:    FormatKilometers(r.HomeDistanceMeters),
		}
		if row.Complete {
			row.TotalTime = FormatMinutes(r.WorkMinutes + r.HomeMinutes)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Classify bands a travel time: under 20 is good, up to 40 inclusive medium, above bad
func Classify(minutes float64) Band {
	switch {
	case !finite(minutes):
		return BandNone
	case minutes < 20:
		return BandGood
	case minutes <= 40:
		return BandMedium
	default:
		return BandBad
	}
}

// FormatMinutes renders "45 min", "1h 5 min" or "2h"; empty for unknown
func FormatMinutes(minutes float64) string {
	if !finite(minutes) {
		return ""
	}
	m := int(math.Max(0, math.Round(minutes)))
	h, rest := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %d min", h, rest)
	}
}

// FormatKilometers renders one decimal below 10 km and whole kilometers above
func FormatKilometers(meters float64) string {
	if !finite(meters) {
		return ""
	}
	km := meters / 1000
	prec := 0
	if km < 10 {
		prec = 1
	}
	return strconv.FormatFloat(km, 'f', prec, 64) + " km"
}
