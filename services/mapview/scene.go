package mapview

import (
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

// SceneOps counts the calls a Scene has received
type SceneOps struct {
	Creates  int `json:"creates"`
	Updates  int `json:"updates"`
	Destroys int `json:"destroys"`
	Attaches int `json:"attaches"`
	Detaches int `json:"detaches"`
}

// View is the current viewport of a Scene
type View struct {
	Center models.LocationPoint `json:"center"`
	Zoom   int                  `json:"zoom"`
}

type renderedFeature struct {
	feature *geojson.Feature
	style   models.Style
	tooltip string
	sticky  bool
}

func (f *renderedFeature) BindTooltip(text string, sticky bool) {
	f.tooltip, f.sticky = text, sticky
}

type sceneObject struct {
	kind     models.DescriptorKind
	marker   MarkerSpec
	circle   CircleSpec
	layerID  string
	features []*renderedFeature
}

// Scene is an in-memory Surface. Readers may snapshot it while the
// Reconciler writes.
type Scene struct {
	mu       sync.RWMutex
	next     Handle
	objects  map[Handle]*sceneObject
	controls map[Handle][]ControlTarget
	view     View
	ops      SceneOps
}

// NewScene creates an empty scene looking at center
func NewScene(center models.LocationPoint, zoom int) *Scene {
	return &Scene{
		objects:  make(map[Handle]*sceneObject),
		controls: make(map[Handle][]ControlTarget),
		view:     View{Center: center, Zoom: zoom},
	}
}

func (s *Scene) add(obj *sceneObject) Handle {
	s.next++
	s.objects[s.next] = obj
	s.ops.Creates++
	return s.next
}

func (s *Scene) lookup(h Handle, kind models.DescriptorKind) (*sceneObject, bool) {
	obj, ok := s.objects[h]
	if !ok || obj.kind != kind {
		logger.Warn("Update of unknown scene object ignored",
			logger.Uint64("handle", uint64(h)),
			logger.String("kind", string(kind)))
		return nil, false
	}
	return obj, true
}

// CreateMarker implements Surface
func (s *Scene) CreateMarker(spec MarkerSpec) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(&sceneObject{kind: models.KindMarker, marker: spec})
}

// UpdateMarker implements Surface
func (s *Scene) UpdateMarker(h Handle, spec MarkerSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.lookup(h, models.KindMarker); ok {
		obj.marker = spec
		s.ops.Updates++
	}
}

// CreateCircle implements Surface
func (s *Scene) CreateCircle(spec CircleSpec) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(&sceneObject{kind: models.KindCircle, circle: spec})
}

// UpdateCircle implements Surface
func (s *Scene) UpdateCircle(h Handle, spec CircleSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.lookup(h, models.KindCircle); ok {
		obj.circle = spec
		s.ops.Updates++
	}
}

// render styles every feature and runs the hook on it
func render(spec LayerSpec) []*renderedFeature {
	out := make([]*renderedFeature, 0, len(spec.Features.Features))
	for _, f := range spec.Features.Features {
		if f == nil {
			continue
		}
		rf := &renderedFeature{feature: f, style: spec.Style(f)}
		if spec.OnFeature != nil {
			spec.OnFeature(f, rf)
		}
		out = append(out, rf)
	}
	return out
}

// CreateShapeLayer implements Surface
func (s *Scene) CreateShapeLayer(spec LayerSpec) Handle {
	features := render(spec)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(&sceneObject{kind: models.KindShapeLayer, layerID: spec.ID, features: features})
}

// UpdateShapeLayer implements Surface
func (s *Scene) UpdateShapeLayer(h Handle, spec LayerSpec) {
	features := render(spec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.lookup(h, models.KindShapeLayer); ok {
		obj.layerID = spec.ID
		obj.features = features
		s.ops.Updates++
	}
}

// Destroy implements Surface. Unknown handles are ignored.
func (s *Scene) Destroy(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[h]; !ok {
		return
	}
	delete(s.objects, h)
	s.ops.Destroys++
}

// AttachControl implements Surface
func (s *Scene) AttachControl(targets []ControlTarget) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.controls[s.next] = append([]ControlTarget(nil), targets...)
	s.ops.Attaches++
	return s.next
}

// DetachControl implements Surface
func (s *Scene) DetachControl(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.controls[h]; !ok {
		return
	}
	delete(s.controls, h)
	s.ops.Detaches++
}

// SetView implements Surface
func (s *Scene) SetView(center models.LocationPoint, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = View{Center: center, Zoom: zoom}
}

// Zoom implements Surface
func (s *Scene) Zoom() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Zoom
}

// View returns the current viewport
func (s *Scene) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Ops returns the operation counters
func (s *Scene) Ops() SceneOps {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ops
}

// Controls returns the targets of every attached control
func (s *Scene) Controls() [][]ControlTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handles := make([]Handle, 0, len(s.controls))
	for h := range s.controls {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	out := make([][]ControlTarget, 0, len(handles))
	for _, h := range handles {
		out = append(out, append([]ControlTarget(nil), s.controls[h]...))
	}
	return out
}

// Len returns the number of live objects
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Snapshot renders every live object as GeoJSON in creation order. Markers
// and circles become points, layer features are copied with their resolved
// style in the properties.
func (s *Scene) Snapshot() *geojson.FeatureCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handles := make([]Handle, 0, len(s.objects))
	for h := range s.objects {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	fc := geojson.NewFeatureCollection()
	for _, h := range handles {
		obj := s.objects[h]
		switch obj.kind {
		case models.KindMarker:
			m := obj.marker
			f := geojson.NewFeature(orb.Point{m.Position.Lng, m.Position.Lat})
			f.ID = m.ID
			f.Properties["kind"] = string(models.KindMarker)
			f.Properties["label"] = m.Label
			f.Properties["color"] = m.Color
			if m.Tooltip != "" {
				f.Properties["tooltip"] = m.Tooltip
			}
			fc.Append(f)
		case models.KindCircle:
			c := obj.circle
			f := geojson.NewFeature(orb.Point{c.Center.Lng, c.Center.Lat})
			f.ID = c.ID
			f.Properties["kind"] = string(models.KindCircle)
			f.Properties["radius"] = c.RadiusMeters
			f.Properties["style"] = c.Style
			fc.Append(f)
		case models.KindShapeLayer:
			for _, rf := range obj.features {
				f := geojson.NewFeature(rf.feature.Geometry)
				f.ID = rf.feature.ID
				f.Properties = rf.feature.Properties.Clone()
				if f.Properties == nil {
					f.Properties = geojson.Properties{}
				}
				f.Properties["kind"] = string(models.KindShapeLayer)
				f.Properties["layer"] = obj.layerID
				f.Properties["style"] = rf.style
				if rf.tooltip != "" {
					f.Properties["tooltip"] = rf.tooltip
				}
				fc.Append(f)
			}
		}
	}
	return fc
}
