package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/cwbudde/go-overpass"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/pkg/retry"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/overlay"
)

// ProviderName is the breaker and log name of the Overpass provider
const ProviderName = "overpass"

type themeQuery struct {
	minRadius float64
	maxRadius float64
	build     func(radius int, lat, lng float64) string
}

var themeQueries = map[string]themeQuery{
	overlay.ThemeGreen: {
		minRadius: 50,
		maxRadius: 5000,
		build: func(r int, lat, lng float64) string {
			around := fmt.Sprintf("(around:%d,%f,%f)", r, lat, lng)
			return "[out:json][timeout:25];(" +
				`node["leisure"="park"]` + around + ";" +
				`way["leisure"="park"]` + around + ";" +
				`relation["leisure"="park"]` + around + ";" +
				`way["landuse"="grass"]` + around + ";" +
				`way["leisure"="garden"]` + around + ";" +
				`way["natural"="wood"]` + around + ";" +
				");out body;>;out skel qt;"
		},
	},
	overlay.ThemeStreets: {
		minRadius: 100,
		maxRadius: 5000,
		build: func(r int, lat, lng float64) string {
			return fmt.Sprintf(`[out:json][timeout:30];(way["highway"]["name"](around:%d,%f,%f););out body;>;out skel qt;`, r, lat, lng)
		},
	},
}

// OverpassGateway serves OpenStreetMap themes from an Overpass interpreter
type OverpassGateway struct {
	client  overpass.Client
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewOverpassGateway creates the thematic provider
func NewOverpassGateway(cfg models.OverlayConfig, breaker *circuitbreaker.CircuitBreaker) *OverpassGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	// busy public instances answer 429 or 504, retried inside one breaker call
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Retries

	logger.Info("Overpass theme provider initialized",
		logger.String("url", cfg.OverpassURL),
		logger.Duration("timeout", timeout),
		logger.Int("retries", cfg.Retries))

	return &OverpassGateway{
		client:  overpass.NewWithSettings(cfg.OverpassURL, 1, httpClient),
		breaker: breaker,
		retrier: retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}

// Themes lists the served theme names
func (g *OverpassGateway) Themes() []string {
	names := make([]string, 0, len(themeQueries))
	for name := range themeQueries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FetchTheme queries Overpass around center and converts the answer to GeoJSON
func (g *OverpassGateway) FetchTheme(ctx context.Context, theme string, center models.LocationPoint, radiusMeters float64) (*geojson.FeatureCollection, error) {
	tq, ok := themeQueries[theme]
	if !ok {
		return nil, fmt.Errorf("%w: %s", overlay.ErrUnknownTheme, theme)
	}
	radius := int(utils.Clamp(radiusMeters, tq.minRadius, tq.maxRadius))
	q := tq.build(radius, center.Lat, center.Lng)

	var result overpass.Result
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			res, err := g.query(ctx, q)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		logger.Warn("Theme fetch failed",
			logger.String("theme", theme),
			logger.Err(err))
		return nil, fmt.Errorf("failed to fetch theme %s: %w", theme, err)
	}

	fc := ToFeatureCollection(result)
	logger.Debug("Theme fetched",
		logger.String("theme", theme),
		logger.Int("radius", radius),
		logger.Int("features", len(fc.Features)))
	return fc, nil
}

// query runs the blocking client call and gives up waiting when ctx ends
func (g *OverpassGateway) query(ctx context.Context, q string) (overpass.Result, error) {
	type answer struct {
		result overpass.Result
		err    error
	}
	ch := make(chan answer, 1)
	go func() {
		res, err := g.client.Query(q)
		ch <- answer{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return overpass.Result{}, ctx.Err()
	case a := <-ch:
		return a.result, a.err
	}
}

// ToFeatureCollection converts tagged ways and nodes. Closed ways become
// polygons, open ways line strings, tagged nodes points. Untagged nodes only
// carry way geometry and relations are not assembled.
func ToFeatureCollection(res overpass.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	wayIDs := make([]int64, 0, len(res.Ways))
	for id := range res.Ways {
		wayIDs = append(wayIDs, id)
	}
	sort.Slice(wayIDs, func(i, j int) bool { return wayIDs[i] < wayIDs[j] })

	for _, id := range wayIDs {
		way := res.Ways[id]
		if len(way.Tags) == 0 {
			continue
		}
		line := make(orb.LineString, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			if n == nil {
				continue
			}
			line = append(line, orb.Point{n.Lon, n.Lat})
		}
		if len(line) < 2 {
			continue
		}

		var geom orb.Geometry = line
		if len(line) >= 4 && line[0].Equal(line[len(line)-1]) {
			geom = orb.Polygon{orb.Ring(line)}
		}
		fc.Append(newFeature(geom, "way", id, way.Tags))
	}

	nodeIDs := make([]int64, 0, len(res.Nodes))
	for id, n := range res.Nodes {
		if len(n.Tags) > 0 {
			nodeIDs = append(nodeIDs, id)
		}
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	for _, id := range nodeIDs {
		n := res.Nodes[id]
		fc.Append(newFeature(orb.Point{n.Lon, n.Lat}, "node", id, n.Tags))
	}
	return fc
}

func newFeature(geom orb.Geometry, kind string, id int64, tags map[string]string) *geojson.Feature {
	f := geojson.NewFeature(geom)
	f.ID = fmt.Sprintf("%s/%d", kind, id)
	f.Properties["id"] = f.ID
	for k, v := range tags {
		f.Properties[k] = v
	}
	return f
}
