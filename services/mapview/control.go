package mapview

import "github.com/piresc/commutemap/internal/pkg/models"

// controlTargets lists home, then work, then every frequent marker in order
func controlTargets(specs []MarkerSpec) []ControlTarget {
	var targets []ControlTarget
	for _, id := range []string{models.MarkerHome, models.MarkerWork} {
		for _, s := range specs {
			if s.ID == id {
				targets = append(targets, ControlTarget{ID: id, Label: labelFor(id), Position: s.Position})
				break
			}
		}
	}
	for _, s := range specs {
		if IsFrequentMarker(s.ID) {
			targets = append(targets, ControlTarget{ID: s.ID, Label: s.Label, Position: s.Position})
		}
	}
	return targets
}

func labelFor(id string) string {
	if id == models.MarkerHome {
		return "HOME"
	}
	return "WORK"
}

func sameTargets(a, b []ControlTarget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// syncControl tears down and re-attaches the reference-point control when
// its targets changed. An empty target list leaves no control attached.
func (r *Reconciler) syncControl(specs []MarkerSpec) bool {
	targets := controlTargets(specs)
	if sameTargets(targets, r.targets) {
		return false
	}

	if r.control != 0 {
		r.surface.DetachControl(r.control)
		r.control = 0
	}
	if len(targets) > 0 {
		r.control = r.surface.AttachControl(targets)
	}
	r.targets = targets
	return true
}

// Targets returns the current reference-point menu
func (r *Reconciler) Targets() []ControlTarget {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ControlTarget(nil), r.targets...)
}

// CenterOn moves the view to a reference point, zooming in to at least
// CenterZoom. It reports false for an unknown target.
func (r *Reconciler) CenterOn(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.targets {
		if t.ID == id {
			zoom := r.surface.Zoom()
			if zoom < CenterZoom {
				zoom = CenterZoom
			}
			r.surface.SetView(t.Position, zoom)
			return true
		}
	}
	return false
}

// SetView moves the view without changing zoom constraints
func (r *Reconciler) SetView(center models.LocationPoint, zoom int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surface.SetView(center, zoom)
}
