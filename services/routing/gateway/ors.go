package gateway

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/commutemap/internal/pkg/http"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/routing"
)

// Isochrone range bounds in seconds
const (
	MinIsochroneRange = 60
	MaxIsochroneRange = 7200
)

// ORSGateway is the isochrone tier backed by openrouteservice
type ORSGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewORSGateway creates the isochrone tier
func NewORSGateway(client *httpclient.Client, breaker *circuitbreaker.CircuitBreaker) *ORSGateway {
	return &ORSGateway{client: client, breaker: breaker}
}

type isochroneRequest struct {
	Locations [][2]float64 `json:"locations"`
	Range     []float64    `json:"range"`
	Units     string       `json:"units"`
}

// ORSProfile translates a mode to the openrouteservice profile vocabulary
func ORSProfile(mode models.TransportMode) string {
	switch routing.EffectiveMode(mode) {
	case models.ModeBike:
		return "cycling-regular"
	case models.ModeWalk:
		return "foot-walking"
	default:
		return "driving-car"
	}
}

// EstimateIsochrone requests a single reachability polygon around origin.
// Without an API key the tier declines without a network call.
func (g *ORSGateway) EstimateIsochrone(ctx context.Context, origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) (*geojson.FeatureCollection, bool) {
	if !g.client.HasAuth() {
		logger.Debug("Isochrone tier has no credentials", logger.String("tier", TierIsochrone))
		return nil, false
	}

	body := isochroneRequest{
		Locations: [][2]float64{{origin.Lng, origin.Lat}},
		Range:     []float64{utils.Clamp(rangeSeconds, MinIsochroneRange, MaxIsochroneRange)},
		Units:     "m",
	}
	endpoint := "/v2/isochrones/" + ORSProfile(mode)

	var result *geojson.FeatureCollection
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		fc := geojson.NewFeatureCollection()
		if err := g.client.PostJSON(ctx, endpoint, body, fc); err != nil {
			return err
		}
		result = fc
		return nil
	})
	if err != nil {
		logUnavailable(TierIsochrone, err)
		return nil, false
	}

	return result, true
}
