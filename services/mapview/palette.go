package mapview

import (
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// Default colors for anything without a known role
const (
	DefaultStrokeColor = "#2e7d32"
	DefaultFillColor   = "#66bb6a"
)

var palette = map[models.ColorRole]string{
	models.RoleHome:      "#e53935",
	models.RoleWork:      "#1e88e5",
	models.RoleSpot:      "#8e24aa",
	models.RoleAnalysis:  "#1e88e5",
	models.RoleGreen:     "#2e7d32",
	models.RoleGreenFill: "#66bb6a",
	models.RoleRoute:     "#1e88e5",
	models.RoleIsochrone: "#ff6f00",
	models.RoleNone:      "",
}

// DefaultLayerStyle is applied to shape layers without a style function
func DefaultLayerStyle(*geojson.Feature) models.Style {
	return models.Style{Color: "#ff6f00", Weight: 2, FillOpacity: 0.15}
}

// resolveColor maps a role to a color. An empty role silently takes the
// default, an unknown one takes it with a warning.
func resolveColor(role models.ColorRole, def, kind, id string) string {
	if role == "" {
		return def
	}
	color, ok := palette[role]
	if !ok {
		logger.Warn("Unknown color role, using default",
			logger.String("kind", kind),
			logger.String("id", id),
			logger.String("role", string(role)))
		return def
	}
	return color
}
