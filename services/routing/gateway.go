package routing

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// RoutingGW presents the isochrone tier and the point-to-point tier behind one
// interface. A false ok means the tier declined or failed to answer; it is an
// expected outcome, not an error.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/commutemap/services/routing RoutingGW
type RoutingGW interface {
	EstimateIsochrone(ctx context.Context, origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) (*geojson.FeatureCollection, bool)
	EstimateRoute(ctx context.Context, origin, destination models.LocationPoint, mode models.TransportMode) (models.RouteEstimate, bool)
}

// EffectiveMode substitutes a supported profile for modes the providers do
// not route natively. Transit is approximated by car.
func EffectiveMode(mode models.TransportMode) models.TransportMode {
	if mode == models.ModeTransit {
		return models.ModeCar
	}
	return mode
}
