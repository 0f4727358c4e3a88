package mapview

import (
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// Handle identifies a live object on a Surface. Zero is never a valid handle.
type Handle uint64

// MarkerSpec is a marker with its label and color resolved
type MarkerSpec struct {
	ID       string
	Position models.LocationPoint
	Label    string
	Tooltip  string
	Color    string
}

// CircleSpec is a circle with its colors resolved
type CircleSpec struct {
	ID           string
	Center       models.LocationPoint
	RadiusMeters float64
	Style        models.Style
}

// LayerSpec is a shape layer ready to be drawn. Style is never nil.
type LayerSpec struct {
	ID        string
	Features  *geojson.FeatureCollection
	StyleKey  string
	Style     models.StyleFunc
	OnFeature models.FeatureHook
}

// ControlTarget is one "center the view on" entry
type ControlTarget struct {
	ID       string               `json:"id"`
	Label    string               `json:"label"`
	Position models.LocationPoint `json:"position"`
}

// Surface is the imperative map widget. Only the Reconciler writes to it.
// Updating a shape layer replaces its content and re-applies style and hooks
// to the new features.
type Surface interface {
	CreateMarker(spec MarkerSpec) Handle
	UpdateMarker(h Handle, spec MarkerSpec)
	CreateCircle(spec CircleSpec) Handle
	UpdateCircle(h Handle, spec CircleSpec)
	CreateShapeLayer(spec LayerSpec) Handle
	UpdateShapeLayer(h Handle, spec LayerSpec)
	Destroy(h Handle)

	AttachControl(targets []ControlTarget) Handle
	DetachControl(h Handle)

	SetView(center models.LocationPoint, zoom int)
	Zoom() int
}
