package models

import "github.com/paulmach/orb/geojson"

// CommuteAnalysisKind tells which routing tier produced the commute analysis shape
type CommuteAnalysisKind string

const (
	AnalysisIsochrone CommuteAnalysisKind = "isochrone"
	AnalysisRoute     CommuteAnalysisKind = "route"
)

// CommuteAnalysis is the delivered shape of the home-centered commute analysis
type CommuteAnalysis struct {
	Kind     CommuteAnalysisKind
	Features *geojson.FeatureCollection
	Minutes  float64
	Summary  string
}

// OverlayInput is everything the descriptor store needs to compute the desired overlay set
type OverlayInput struct {
	Home     *LocationPoint
	Work     *LocationPoint
	Frequent []FrequentPoint
	Mode     TransportMode
	Toggles  OverlayToggles

	Commute *CommuteAnalysis
	Parks   *geojson.FeatureCollection
	Themes  map[string]*geojson.FeatureCollection
}

// MapCenter picks home, then work, then the first frequent point
func (in OverlayInput) MapCenter() (LocationPoint, bool) {
	switch {
	case in.Home != nil:
		return *in.Home, true
	case in.Work != nil:
		return *in.Work, true
	case len(in.Frequent) > 0:
		return in.Frequent[0].Point, true
	}
	return LocationPoint{}, false
}
