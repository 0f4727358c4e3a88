package gateway

import (
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/commutemap/internal/pkg/http"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

var (
	warsaw = models.LocationPoint{Lat: 52.2297, Lng: 21.0122, Label: "Home"}
	office = models.LocationPoint{Lat: 52.2319, Lng: 20.9846, Label: "Office"}
)

const isochroneBody = `{
	"type": "FeatureCollection",
	"bbox": [20.9, 52.1, 21.1, 52.3],
	"features": [{
		"type": "Feature",
		"properties": {"group_index": 0, "value": 1800},
		"geometry": {"type": "Polygon", "coordinates": [[[20.9,52.1],[21.1,52.1],[21.1,52.3],[20.9,52.1]]]}
	}]
}`

const routeBody = `{
	"code": "Ok",
	"routes": [{
		"geometry": {"type": "LineString", "coordinates": [[21.0122,52.2297],[20.9846,52.2319]]},
		"duration": 612.4,
		"distance": 2450.7
	}, {
		"geometry": {"type": "LineString", "coordinates": [[21.0122,52.2297],[20.9846,52.2319]]},
		"duration": 900,
		"distance": 3100
	}]
}`

func newTestBreaker(failures uint32) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(BreakerConfig(models.RoutingConfig{
		BreakerFailures:        failures,
		BreakerCooldownSeconds: 3600,
	}), logger.NewNopLogger())
}

func newTestORS(baseURL, key string) *ORSGateway {
	client := httpclient.NewClient(httpclient.Config{
		Name:       TierIsochrone,
		BaseURL:    baseURL,
		AuthHeader: "Authorization",
		AuthKey:    key,
	})
	return NewORSGateway(client, newTestBreaker(5))
}

func newTestOSRM(baseURL string, breaker *circuitbreaker.CircuitBreaker) *OSRMGateway {
	client := httpclient.NewClient(httpclient.Config{Name: TierRoute, BaseURL: baseURL})
	return NewOSRMGateway(client, breaker)
}
