package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/bluele/gcache"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/routing"
)

// CachedGateway keeps recent available answers in an LRU cache. Unavailable
// answers are never cached so a recovering provider is retried on the next call.
type CachedGateway struct {
	next  routing.RoutingGW
	cache gcache.Cache
}

// NewCachedGateway wraps next with an LRU cache of the given size and TTL
func NewCachedGateway(next routing.RoutingGW, size int, ttl time.Duration) *CachedGateway {
	if size < 1 {
		size = 1
	}
	builder := gcache.New(size).LRU()
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}
	return &CachedGateway{next: next, cache: builder.Build()}
}

func isochroneKey(origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) string {
	return fmt.Sprintf("iso:%s:%s:%d",
		routing.EffectiveMode(mode),
		utils.EncodeLocation(origin, utils.CacheKeyPrecision),
		int(utils.Clamp(rangeSeconds, MinIsochroneRange, MaxIsochroneRange)))
}

func routeKey(origin, destination models.LocationPoint, mode models.TransportMode) string {
	return fmt.Sprintf("route:%s:%s:%s",
		routing.EffectiveMode(mode),
		utils.EncodeLocation(origin, utils.CacheKeyPrecision),
		utils.EncodeLocation(destination, utils.CacheKeyPrecision))
}

// EstimateIsochrone serves from cache or asks the wrapped gateway
func (g *CachedGateway) EstimateIsochrone(ctx context.Context, origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) (*geojson.FeatureCollection, bool) {
	key := isochroneKey(origin, mode, rangeSeconds)
	if v, err := g.cache.Get(key); err == nil {
		if fc, ok := v.(*geojson.FeatureCollection); ok {
			return fc, true
		}
	}

	fc, ok := g.next.EstimateIsochrone(ctx, origin, mode, rangeSeconds)
	if ok {
		g.store(key, fc)
	}
	return fc, ok
}

// EstimateRoute serves from cache or asks the wrapped gateway
func (g *CachedGateway) EstimateRoute(ctx context.Context, origin, destination models.LocationPoint, mode models.TransportMode) (models.RouteEstimate, bool) {
	key := routeKey(origin, destination, mode)
	if v, err := g.cache.Get(key); err == nil {
		if est, ok := v.(models.RouteEstimate); ok {
			return est, true
		}
	}

	est, ok := g.next.EstimateRoute(ctx, origin, destination, mode)
	if ok {
		g.store(key, est)
	}
	return est, ok
}

func (g *CachedGateway) store(key string, value interface{}) {
	if err := g.cache.Set(key, value); err != nil {
		logger.Warn("Failed to cache routing answer",
			logger.String("key", key),
			logger.Err(err))
	}
}
