package overlay

import (
	"context"
	"errors"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// Themes shipped by the Overpass provider
const (
	ThemeGreen   = "green"
	ThemeStreets = "streets"
)

// ErrUnknownTheme is returned for a theme the provider does not serve
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeGW supplies thematic shape collections around a center point
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/commutemap/services/overlay ThemeGW
type ThemeGW interface {
	FetchTheme(ctx context.Context, theme string, center models.LocationPoint, radiusMeters float64) (*geojson.FeatureCollection, error)
	Themes() []string
}
