package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/commutemap/internal/pkg/http"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/routing"
)

// OSRMGateway is the point-to-point tier backed by an OSRM server
type OSRMGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewOSRMGateway creates the point-to-point tier
func NewOSRMGateway(client *httpclient.Client, breaker *circuitbreaker.CircuitBreaker) *OSRMGateway {
	return &OSRMGateway{client: client, breaker: breaker}
}

var errNoRoutes = errors.New("no routes")

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Duration *float64          `json:"duration"`
	Distance *float64          `json:"distance"`
}

// OSRMProfile translates a mode to the OSRM profile vocabulary
func OSRMProfile(mode models.TransportMode) string {
	switch routing.EffectiveMode(mode) {
	case models.ModeBike:
		return "cycling"
	case models.ModeWalk:
		return "walking"
	default:
		return "driving"
	}
}

func coord(p models.LocationPoint) string {
	return strconv.FormatFloat(p.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// EstimateRoute returns the first candidate route. A missing duration or
// distance is reported as NaN for the caller to handle.
func (g *OSRMGateway) EstimateRoute(ctx context.Context, origin, destination models.LocationPoint, mode models.TransportMode) (models.RouteEstimate, bool) {
	endpoint := fmt.Sprintf("/route/v1/%s/%s;%s?overview=full&geometries=geojson",
		OSRMProfile(mode), coord(origin), coord(destination))

	var resp osrmResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		logUnavailable(TierRoute, err)
		return models.RouteEstimate{}, false
	}

	if resp.Code != "" && resp.Code != "Ok" {
		logUnavailable(TierRoute, fmt.Errorf("provider code %s", resp.Code))
		return models.RouteEstimate{}, false
	}
	if len(resp.Routes) == 0 {
		logUnavailable(TierRoute, errNoRoutes)
		return models.RouteEstimate{}, false
	}

	route := resp.Routes[0]
	fc := geojson.NewFeatureCollection()
	if route.Geometry != nil && route.Geometry.Coordinates != nil {
		fc.Append(geojson.NewFeature(route.Geometry.Geometry()))
	}

	return models.RouteEstimate{
		Geometry:        fc,
		DurationSeconds: orNaN(route.Duration),
		DistanceMeters:  orNaN(route.Distance),
	}, true
}
