package models

import "github.com/paulmach/orb/geojson"

// RouteEstimate is a point-to-point routing answer
type RouteEstimate struct {
	Geometry        *geojson.FeatureCollection
	DurationSeconds float64
	DistanceMeters  float64
}
