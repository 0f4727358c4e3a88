package mapview

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// CenterZoom is the minimum zoom used when centering on a reference point
const CenterZoom = 14

// PassStats counts the surface operations of one reconciliation pass
type PassStats struct {
	Created        int  `json:"created"`
	Updated        int  `json:"updated"`
	Destroyed      int  `json:"destroyed"`
	Skipped        int  `json:"skipped"`
	ControlRebuilt bool `json:"control_rebuilt"`
}

// Operations is the number of create, update and destroy calls
func (s PassStats) Operations() int {
	return s.Created + s.Updated + s.Destroyed
}

type markerEntry struct {
	handle Handle
	spec   MarkerSpec
}

type circleEntry struct {
	handle Handle
	spec   CircleSpec
}

type layerEntry struct {
	handle   Handle
	features *geojson.FeatureCollection
	styleKey string
}

// Reconciler owns a Surface and keeps it in line with descriptor sets.
// Calls are serialized; Reconcile must not be called from a Surface callback.
type Reconciler struct {
	surface Surface

	mu      sync.Mutex
	markers map[string]*markerEntry
	circles map[string]*circleEntry
	layers  map[string]*layerEntry
	control Handle
	targets []ControlTarget
}

// NewReconciler takes ownership of surface
func NewReconciler(surface Surface) *Reconciler {
	return &Reconciler{
		surface: surface,
		markers: make(map[string]*markerEntry),
		circles: make(map[string]*circleEntry),
		layers:  make(map[string]*layerEntry),
	}
}

// IsFrequentMarker reports whether a marker id belongs to the frequent point family
func IsFrequentMarker(id string) bool {
	return id == models.FrequentMarkerPrefix || strings.HasPrefix(id, models.FrequentMarkerPrefix+"-")
}

type desiredSet struct {
	markers []models.Marker
	circles []models.Circle
	layers  []models.ShapeLayer
	skipped int
}

// partition splits descriptors by kind, keeping the first of duplicate ids
func partition(ds []models.Descriptor) desiredSet {
	var set desiredSet
	seen := map[models.DescriptorKind]map[string]bool{
		models.KindMarker:     {},
		models.KindCircle:     {},
		models.KindShapeLayer: {},
	}

	for _, d := range ds {
		d = deref(d)
		if d == nil {
			logger.Warn("Skipping empty descriptor")
			set.skipped++
			continue
		}

		kind, id := d.Kind(), d.DescriptorID()
		if seen[kind][id] {
			logger.Warn("Duplicate descriptor id, keeping the first",
				logger.String("kind", string(kind)),
				logger.String("id", id))
			set.skipped++
			continue
		}
		seen[kind][id] = true

		switch v := d.(type) {
		case models.Marker:
			set.markers = append(set.markers, v)
		case models.Circle:
			set.circles = append(set.circles, v)
		case models.ShapeLayer:
			set.layers = append(set.layers, v)
		}
	}
	return set
}

func deref(d models.Descriptor) models.Descriptor {
	switch v := d.(type) {
	case *models.Marker:
		if v == nil {
			return nil
		}
		return *v
	case *models.Circle:
		if v == nil {
			return nil
		}
		return *v
	case *models.ShapeLayer:
		if v == nil {
			return nil
		}
		return *v
	}
	return d
}

// Reconcile brings the surface in line with ds: objects whose id left the set
// are destroyed, new ids are created and known ids are updated in place when
// their resolved spec changed.
func (r *Reconciler) Reconcile(ds []models.Descriptor) PassStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	desired := partition(ds)
	stats := PassStats{Skipped: desired.skipped}

	markerSpecs := r.resolveMarkers(desired.markers)

	r.removeMissing(desired, &stats)
	r.applyMarkers(markerSpecs, &stats)
	r.applyCircles(desired.circles, &stats)
	r.applyLayers(desired.layers, &stats)
	stats.ControlRebuilt = r.syncControl(markerSpecs)

	if stats.Operations() > 0 || stats.ControlRebuilt {
		logger.Debug("Map reconciled",
			logger.Int("created", stats.Created),
			logger.Int("updated", stats.Updated),
			logger.Int("destroyed", stats.Destroyed),
			logger.Bool("control_rebuilt", stats.ControlRebuilt))
	}
	return stats
}

func (r *Reconciler) removeMissing(desired desiredSet, stats *PassStats) {
	keepMarkers := make(map[string]bool, len(desired.markers))
	for _, m := range desired.markers {
		keepMarkers[m.ID] = true
	}
	for id, e := range r.markers {
		if !keepMarkers[id] {
			r.surface.Destroy(e.handle)
			delete(r.markers, id)
			stats.Destroyed++
		}
	}

	keepCircles := make(map[string]bool, len(desired.circles))
	for _, c := range desired.circles {
		keepCircles[c.ID] = true
	}
	for id, e := range r.circles {
		if !keepCircles[id] {
			r.surface.Destroy(e.handle)
			delete(r.circles, id)
			stats.Destroyed++
		}
	}

	keepLayers := make(map[string]bool, len(desired.layers))
	for _, l := range desired.layers {
		keepLayers[l.ID] = true
	}
	for id, e := range r.layers {
		if !keepLayers[id] {
			r.surface.Destroy(e.handle)
			delete(r.layers, id)
			stats.Destroyed++
		}
	}
}

// resolveMarkers numbers the frequent family in list order every pass
func (r *Reconciler) resolveMarkers(markers []models.Marker) []MarkerSpec {
	specs := make([]MarkerSpec, 0, len(markers))
	spot := 0
	for _, m := range markers {
		spec := MarkerSpec{
			ID:       m.ID,
			Position: m.Position,
			Label:    m.Label,
			Color:    resolveColor(m.ColorRole, DefaultStrokeColor, string(models.KindMarker), m.ID),
		}
		if IsFrequentMarker(m.ID) {
			spot++
			spec.Label = fmt.Sprintf("SPOT %d", spot)
			spec.Tooltip = m.Label
		}
		specs = append(specs, spec)
	}
	return specs
}

func (r *Reconciler) applyMarkers(specs []MarkerSpec, stats *PassStats) {
	for _, spec := range specs {
		e, ok := r.markers[spec.ID]
		if !ok {
			r.markers[spec.ID] = &markerEntry{handle: r.surface.CreateMarker(spec), spec: spec}
			stats.Created++
			continue
		}
		if e.spec != spec {
			r.surface.UpdateMarker(e.handle, spec)
			e.spec = spec
			stats.Updated++
		}
	}
}

func (r *Reconciler) resolveCircle(c models.Circle) CircleSpec {
	radius := c.RadiusMeters
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		logger.Warn("Invalid circle radius, using 0",
			logger.String("id", c.ID),
			logger.Float64("radius", radius))
		radius = 0
	}

	kind := string(models.KindCircle)
	style := models.Style{
		Color:       resolveColor(c.StrokeRole, DefaultStrokeColor, kind, c.ID),
		FillColor:   resolveColor(c.FillRole, DefaultFillColor, kind, c.ID),
		Weight:      c.StrokeWeight,
		Opacity:     c.Opacity,
		FillOpacity: c.FillOpacity,
		DashArray:   c.DashPattern,
	}
	if style.FillColor == "" {
		style.FillOpacity = 0
	}
	return CircleSpec{ID: c.ID, Center: c.Center, RadiusMeters: radius, Style: style}
}

func (r *Reconciler) applyCircles(circles []models.Circle, stats *PassStats) {
	for _, c := range circles {
		spec := r.resolveCircle(c)
		e, ok := r.circles[c.ID]
		if !ok {
			r.circles[c.ID] = &circleEntry{handle: r.surface.CreateCircle(spec), spec: spec}
			stats.Created++
			continue
		}
		if e.spec != spec {
			r.surface.UpdateCircle(e.handle, spec)
			e.spec = spec
			stats.Updated++
		}
	}
}

func (r *Reconciler) resolveLayer(l models.ShapeLayer) LayerSpec {
	spec := LayerSpec{
		ID:        l.ID,
		Features:  l.Features,
		StyleKey:  l.StyleKey,
		Style:     l.Style,
		OnFeature: l.OnFeature,
	}
	if spec.Features == nil {
		logger.Warn("Shape layer without features, drawing it empty", logger.String("id", l.ID))
		spec.Features = geojson.NewFeatureCollection()
	}
	if spec.Style == nil {
		spec.Style = DefaultLayerStyle
		spec.StyleKey = ""
	}
	return spec
}

// applyLayers treats a layer as unchanged while it keeps its feature
// collection and style key.
func (r *Reconciler) applyLayers(layers []models.ShapeLayer, stats *PassStats) {
	for _, l := range layers {
		e, ok := r.layers[l.ID]
		if ok && e.features == l.Features && e.styleKey == l.StyleKey {
			continue
		}

		spec := r.resolveLayer(l)
		if !ok {
			r.layers[l.ID] = &layerEntry{
				handle:   r.surface.CreateShapeLayer(spec),
				features: l.Features,
				styleKey: l.StyleKey,
			}
			stats.Created++
			continue
		}
		r.surface.UpdateShapeLayer(e.handle, spec)
		e.features, e.styleKey = l.Features, l.StyleKey
		stats.Updated++
	}
}

// LiveIDs lists the ids currently on the surface for one kind, sorted
func (r *Reconciler) LiveIDs(kind models.DescriptorKind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	switch kind {
	case models.KindMarker:
		for id := range r.markers {
			ids = append(ids, id)
		}
	case models.KindCircle:
		for id := range r.circles {
			ids = append(ids, id)
		}
	case models.KindShapeLayer:
		for id := range r.layers {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
