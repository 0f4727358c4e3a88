package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used by all distance helpers
const EarthRadiusMeters = 6371000.0

// CacheKeyPrecision is the geohash precision used for routing cache keys.
// Twelve characters is a cell of a few centimetres, so distinct places never
// share a key.
const CacheKeyPrecision = 12

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// EquirectangularMeters approximates the distance between two points with an
// equirectangular projection. Accurate enough for city-scale fallbacks.
func EquirectangularMeters(a, b models.LocationPoint) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	x := toRadians(b.Lng-a.Lng) * math.Cos((phi1+phi2)/2)
	y := phi2 - phi1
	return math.Sqrt(x*x+y*y) * EarthRadiusMeters
}

// EncodeLocation converts a point to a geohash string
func EncodeLocation(p models.LocationPoint, precision uint) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, precision)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
