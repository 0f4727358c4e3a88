package usecase

import (
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/overlay"
)

// OverlayUC implements overlay.OverlayUC
type OverlayUC struct{}

// NewOverlayUC creates the descriptor store
func NewOverlayUC() *OverlayUC {
	return &OverlayUC{}
}

// Build returns markers, then circles, then shape layers. The result depends
// only on in.
func (uc *OverlayUC) Build(in models.OverlayInput) []models.Descriptor {
	var out []models.Descriptor
	out = append(out, markers(in)...)
	out = append(out, circles(in)...)
	out = append(out, layers(in)...)
	return out
}

func markers(in models.OverlayInput) []models.Descriptor {
	var out []models.Descriptor
	if in.Home != nil {
		out = append(out, models.Marker{
			ID:        models.MarkerHome,
			Position:  *in.Home,
			Label:     "HOME",
			ColorRole: models.RoleHome,
		})
	}
	if in.Work != nil {
		out = append(out, models.Marker{
			ID:        models.MarkerWork,
			Position:  *in.Work,
			Label:     "WORK",
			ColorRole: models.RoleWork,
		})
	}
	for _, fp := range in.Frequent {
		out = append(out, models.Marker{
			ID:        FrequentMarkerID(fp.ID),
			Position:  fp.Point,
			Label:     fp.Point.Label,
			ColorRole: models.RoleSpot,
		})
	}
	return out
}

// FrequentMarkerID is the marker id of a frequent point
func FrequentMarkerID(pointID string) string {
	return models.FrequentMarkerPrefix + "-" + pointID
}

func circles(in models.OverlayInput) []models.Descriptor {
	var out []models.Descriptor
	if center, ok := in.MapCenter(); ok && in.Toggles.AnalysisRadius > 0 {
		out = append(out, models.Circle{
			ID:           overlay.CircleAnalysisRange,
			Center:       center,
			RadiusMeters: in.Toggles.AnalysisRadius,
			StrokeRole:   models.RoleAnalysis,
			FillRole:     models.RoleNone,
			Opacity:      1,
			FillOpacity:  0,
			StrokeWeight: 2,
			DashPattern:  "6 6",
		})
	}
	if in.Home != nil && in.Toggles.AnalyzeGreen && in.Toggles.GreenRadiusMeters > 0 {
		out = append(out, models.Circle{
			ID:           overlay.CircleGreenRadius,
			Center:       *in.Home,
			RadiusMeters: in.Toggles.GreenRadiusMeters,
			StrokeRole:   models.RoleGreen,
			FillRole:     models.RoleGreenFill,
			Opacity:      0.8,
			FillOpacity:  0.15,
			StrokeWeight: 2,
		})
	}
	return out
}

func layers(in models.OverlayInput) []models.Descriptor {
	var out []models.Descriptor

	if c := in.Commute; c != nil && c.Features != nil && in.Toggles.AnalyzeCommute {
		switch c.Kind {
		case models.AnalysisIsochrone:
			out = append(out, models.ShapeLayer{
				ID:        overlay.LayerIsochrones,
				Features:  c.Features,
				StyleKey:  overlay.LayerIsochrones,
				Style:     IsochroneStyle,
				OnFeature: SummaryTooltip(c.Summary),
			})
		case models.AnalysisRoute:
			out = append(out, models.ShapeLayer{
				ID:        overlay.LayerRoute,
				Features:  c.Features,
				StyleKey:  overlay.LayerRoute,
				Style:     RouteStyle,
				OnFeature: SummaryTooltip(c.Summary),
			})
		}
	}

	if in.Parks != nil && in.Toggles.AnalyzeGreen {
		out = append(out, models.ShapeLayer{
			ID:        overlay.LayerParks,
			Features:  in.Parks,
			StyleKey:  overlay.LayerParks,
			Style:     ParksStyle,
			OnFeature: NameTooltip("Park"),
		})
	}

	for _, theme := range in.Toggles.EnabledThemes() {
		fc := in.Themes[theme]
		if fc == nil {
			continue
		}
		out = append(out, models.ShapeLayer{
			ID:        overlay.ThemeLayerPrefix + theme,
			Features:  fc,
			StyleKey:  "theme",
			Style:     ThemeStyle,
			OnFeature: NameTooltip(theme),
		})
	}
	return out
}
