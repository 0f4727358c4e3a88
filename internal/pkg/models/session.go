package models

// CommuteAnalysisInfo is the serializable part of a CommuteAnalysis
type CommuteAnalysisInfo struct {
	Kind    CommuteAnalysisKind `json:"kind"`
	Minutes float64             `json:"minutes"`
	Summary string              `json:"summary"`
}

// SessionState is the externally visible input state of the session
type SessionState struct {
	Home         *LocationPoint       `json:"home,omitempty"`
	Work         *LocationPoint       `json:"work,omitempty"`
	Frequent     []FrequentPoint      `json:"frequent"`
	Mode         TransportMode        `json:"mode"`
	Toggles      OverlayToggles       `json:"toggles"`
	Commute      *CommuteAnalysisInfo `json:"commute_analysis,omitempty"`
	GreenLoaded  bool                 `json:"green_loaded"`
	ThemesLoaded []string             `json:"themes_loaded"`
	Comparing    bool                 `json:"comparing"`
	OverlayCount int                  `json:"overlay_count"`
}

// PreferenceEvent is published after a preference snapshot has been stored
type PreferenceEvent struct {
	Profile  string             `json:"profile"`
	Snapshot PreferenceSnapshot `json:"snapshot"`
	SavedAt  string             `json:"saved_at"`
}

// PlaceRequest is the body of a home, work or frequent point
type PlaceRequest struct {
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Label string   `json:"label"`
}

// Point returns the requested point, false when a coordinate is missing
func (r PlaceRequest) Point() (LocationPoint, bool) {
	if r.Lat == nil || r.Lng == nil {
		return LocationPoint{}, false
	}
	return LocationPoint{Lat: *r.Lat, Lng: *r.Lng, Label: r.Label}, true
}

// ReorderRequest lists every frequent point id in the new order
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// ModeRequest selects the transport mode
type ModeRequest struct {
	Mode string `json:"mode"`
}
