package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/commutemap/internal/pkg/http"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/routing"
)

// Tier names, also used as breaker and provider names
const (
	TierIsochrone = "ors"
	TierRoute     = "osrm"
)

// Gateway composes the isochrone tier and the point-to-point tier
type Gateway struct {
	isochrone *ORSGateway
	route     *OSRMGateway
}

// NewGateway composes two tiers into one routing.RoutingGW
func NewGateway(isochrone *ORSGateway, route *OSRMGateway) *Gateway {
	return &Gateway{isochrone: isochrone, route: route}
}

// EstimateIsochrone asks the isochrone tier
func (g *Gateway) EstimateIsochrone(ctx context.Context, origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) (*geojson.FeatureCollection, bool) {
	return g.isochrone.EstimateIsochrone(ctx, origin, mode, rangeSeconds)
}

// EstimateRoute asks the point-to-point tier
func (g *Gateway) EstimateRoute(ctx context.Context, origin, destination models.LocationPoint, mode models.TransportMode) (models.RouteEstimate, bool) {
	return g.route.EstimateRoute(ctx, origin, destination, mode)
}

// NewRoutingGW wires both tiers with their own breakers, behind the cache when enabled
func NewRoutingGW(cfg models.RoutingConfig, breakers *circuitbreaker.Manager) routing.RoutingGW {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	orsClient := httpclient.NewClient(httpclient.Config{
		Name:       TierIsochrone,
		BaseURL:    cfg.ORSBaseURL,
		Timeout:    timeout,
		AuthHeader: "Authorization",
		AuthKey:    cfg.ORSAPIKey,
	})
	osrmClient := httpclient.NewClient(httpclient.Config{
		Name:    TierRoute,
		BaseURL: cfg.OSRMBaseURL,
		Timeout: timeout,
	})

	var gw routing.RoutingGW = NewGateway(
		NewORSGateway(orsClient, breakers.GetOrCreate(TierIsochrone, BreakerConfig(cfg))),
		NewOSRMGateway(osrmClient, breakers.GetOrCreate(TierRoute, BreakerConfig(cfg))),
	)

	if cfg.CacheSize > 0 {
		gw = NewCachedGateway(gw, cfg.CacheSize, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
	}

	logger.Info("Routing gateway initialized",
		logger.String("ors_url", cfg.ORSBaseURL),
		logger.Bool("ors_key_present", cfg.ORSAPIKey != ""),
		logger.String("osrm_url", cfg.OSRMBaseURL),
		logger.Int("cache_size", cfg.CacheSize))

	return gw
}

// BreakerConfig builds the per-tier breaker settings
func BreakerConfig(cfg models.RoutingConfig) circuitbreaker.Config {
	bc := circuitbreaker.DefaultConfig("")
	if cfg.BreakerFailures > 0 {
		bc.FailureThreshold = cfg.BreakerFailures
	}
	if cfg.BreakerCooldownSeconds > 0 {
		bc.Timeout = time.Duration(cfg.BreakerCooldownSeconds) * time.Second
	}
	bc.IsFailure = isTierFailure
	return bc
}

// isTierFailure ignores cancellation and 4xx answers other than 429,
// such as OSRM's NoRoute.
func isTierFailure(err error) bool {
	if !circuitbreaker.IsProviderFailure(err) {
		return false
	}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 && statusErr.StatusCode != 429 {
		return false
	}
	return true
}

func logUnavailable(tier string, err error) {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen),
		errors.Is(err, circuitbreaker.ErrTooManyRequests),
		errors.Is(err, context.Canceled):
		logger.Debug("Routing tier unavailable",
			logger.String("tier", tier),
			logger.Err(err))
	default:
		logger.Warn("Routing tier unavailable",
			logger.String("tier", tier),
			logger.Err(err))
	}
}
