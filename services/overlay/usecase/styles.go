package usecase

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// IsochroneStyle paints reachability polygons
func IsochroneStyle(*geojson.Feature) models.Style {
	return models.Style{Color: "#ff6f00", Weight: 2, FillOpacity: 0.15}
}

// RouteStyle paints the fallback route line
func RouteStyle(*geojson.Feature) models.Style {
	return models.Style{Color: "#1e88e5", Weight: 4, Opacity: 0.9}
}

// ParksStyle paints green areas
func ParksStyle(*geojson.Feature) models.Style {
	return models.Style{Color: "#2e7d32", Weight: 1, FillColor: "#66bb6a", FillOpacity: 0.2}
}

// ThemeStyle paints thematic layers
func ThemeStyle(*geojson.Feature) models.Style {
	return models.Style{Color: "#ff6f00", Weight: 2, FillOpacity: 0.15}
}

// NameTooltip binds a sticky tooltip with the feature's name, or fallback
func NameTooltip(fallback string) models.FeatureHook {
	return func(f *geojson.Feature, b models.FeatureBinder) {
		name := fallback
		if f != nil {
			if n := f.Properties.MustString("name", ""); n != "" {
				name = n
			}
		}
		b.BindTooltip(name, true)
	}
}

// SummaryTooltip binds the commute summary to every feature of the analysis layer
func SummaryTooltip(summary string) models.FeatureHook {
	if summary == "" {
		return nil
	}
	return func(_ *geojson.Feature, b models.FeatureBinder) {
		b.BindTooltip(summary, true)
	}
}

// CommuteSummary renders the short commute analysis text
func CommuteSummary(kind models.CommuteAnalysisKind, minutes float64, mode models.TransportMode) string {
	switch kind {
	case models.AnalysisIsochrone:
		return fmt.Sprintf("~%.0f min (%s)", minutes, mode)
	case models.AnalysisRoute:
		return fmt.Sprintf("~%.0f min", minutes)
	}
	return ""
}
