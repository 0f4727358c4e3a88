package models

import "github.com/paulmach/orb/geojson"

// DescriptorKind discriminates the overlay descriptor variants
type DescriptorKind string

const (
	KindMarker     DescriptorKind = "marker"
	KindCircle     DescriptorKind = "circle"
	KindShapeLayer DescriptorKind = "shape_layer"
)

// Well-known marker ids
const (
	MarkerHome           = "home"
	MarkerWork           = "work"
	FrequentMarkerPrefix = "frequent"
)

// ColorRole names a palette entry instead of a concrete color
type ColorRole string

const (
	RoleHome      ColorRole = "home"
	RoleWork      ColorRole = "work"
	RoleSpot      ColorRole = "spot"
	RoleAnalysis  ColorRole = "analysis"
	RoleGreen     ColorRole = "green"
	RoleGreenFill ColorRole = "green_fill"
	RoleRoute     ColorRole = "route"
	RoleIsochrone ColorRole = "isochrone"
	RoleNone      ColorRole = "none"
)

// Descriptor describes one object that should be on the map. The set of
// implementations is closed: Marker, Circle and ShapeLayer.
type Descriptor interface {
	Kind() DescriptorKind
	DescriptorID() string
	isDescriptor()
}

// Marker is a labeled point
type Marker struct {
	ID        string
	Position  LocationPoint
	Label     string
	ColorRole ColorRole
}

// Circle is a radius ring around a center point
type Circle struct {
	ID           string
	Center       LocationPoint
	RadiusMeters float64
	StrokeRole   ColorRole
	FillRole     ColorRole
	Opacity      float64
	FillOpacity  float64
	StrokeWeight float64
	DashPattern  string
}

// Style is a concrete rendering style for paths and polygons
type Style struct {
	Color       string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
	DashArray   string  `json:"dashArray,omitempty"`
}

// StyleFunc picks a style per feature
type StyleFunc func(f *geojson.Feature) Style

// FeatureBinder is the per-feature handle a FeatureHook decorates
type FeatureBinder interface {
	BindTooltip(text string, sticky bool)
}

// FeatureHook attaches interaction side effects to one rendered feature
type FeatureHook func(f *geojson.Feature, b FeatureBinder)

// ShapeLayer is a labeled shape collection. Two layers with the same ID are
// considered unchanged when they share the Features pointer and StyleKey;
// function fields cannot be compared.
type ShapeLayer struct {
	ID        string
	Features  *geojson.FeatureCollection
	StyleKey  string
	Style     StyleFunc
	OnFeature FeatureHook
}

func (Marker) Kind() DescriptorKind     { return KindMarker }
func (Circle) Kind() DescriptorKind     { return KindCircle }
func (ShapeLayer) Kind() DescriptorKind { return KindShapeLayer }

func (m Marker) DescriptorID() string     { return m.ID }
func (c Circle) DescriptorID() string     { return c.ID }
func (l ShapeLayer) DescriptorID() string { return l.ID }

func (Marker) isDescriptor()     {}
func (Circle) isDescriptor()     {}
func (ShapeLayer) isDescriptor() {}
