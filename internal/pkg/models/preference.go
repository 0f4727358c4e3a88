package models

import "sort"

// PreferenceSnapshot is the plain serializable record of the user's inputs,
// stored by an external persistence collaborator and replayed on startup.
type PreferenceSnapshot struct {
	Home              *LocationPoint  `json:"home,omitempty"`
	Work              *LocationPoint  `json:"work,omitempty"`
	Frequent          []FrequentPoint `json:"frequent,omitempty"`
	Mode              TransportMode   `json:"commute_mode"`
	Toggles           OverlayToggles  `json:"toggles"`
	HighlightedThemes []string        `json:"highlighted_themes,omitempty"`
}

// OverlayToggles is the explicit configuration snapshot that drives overlay visibility
type OverlayToggles struct {
	AnalyzeCommute    bool            `json:"analyze_commute"`
	CommuteMaxMinutes int             `json:"commute_max_minutes"`
	AnalyzeGreen      bool            `json:"analyze_green"`
	GreenRadiusMeters float64         `json:"green_radius_meters"`
	AnalysisRadius    float64         `json:"analysis_radius_meters"`
	Themes            map[string]bool `json:"themes,omitempty"`
}

// DefaultOverlayToggles mirrors the defaults of a fresh session
func DefaultOverlayToggles() OverlayToggles {
	return OverlayToggles{
		CommuteMaxMinutes: 30,
		GreenRadiusMeters: 1000,
		AnalysisRadius:    3000,
	}
}

// EnabledThemes returns the enabled theme names, sorted
func (t OverlayToggles) EnabledThemes() []string {
	var names []string
	for name, on := range t.Themes {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
