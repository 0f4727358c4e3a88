package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/commute/projection"
	"github.com/piresc/commutemap/services/session"
)

type change uint8

const (
	changeComparison change = 1 << iota
	changeCommute
	changeGreen
	changeThemes

	changeAll = changeComparison | changeCommute | changeGreen | changeThemes
)

// Init restores the stored preferences of the profile, if any, and draws
// the initial map.
func (s *Session) Init(ctx context.Context) error {
	if s.deps.Prefs != nil {
		snapshot, err := s.deps.Prefs.Load(ctx, s.profile)
		switch {
		case err == nil:
			logger.Info("Restoring stored preferences", logger.String("profile", s.profile))
			return s.restore(ctx, snapshot, false)
		case err != models.ErrPreferencesNotFound:
			logger.Warn("Failed to load preferences, starting empty",
				logger.String("profile", s.profile),
				logger.Err(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx, changeAll)
	return nil
}

// Wait blocks until background fetches and the latest comparison cycle settle
func (s *Session) Wait() {
	s.bg.Wait()

	s.mu.Lock()
	cycle := s.lastCycle
	s.mu.Unlock()
	if cycle != nil {
		<-cycle.Done()
	}
}

// State returns the current inputs and what has been delivered for them
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SessionState{
		Home:         clonePoint(s.home),
		Work:         clonePoint(s.work),
		Frequent:     append([]models.FrequentPoint{}, s.frequent...),
		Mode:         s.mode,
		Toggles:      cloneToggles(s.toggles),
		GreenLoaded:  s.parks != nil,
		ThemesLoaded: []string{},
		Comparing:    s.deps.Comparison.State().Computing,
		OverlayCount: s.overlayCount,
	}
	if s.commute != nil {
		state.Commute = &models.CommuteAnalysisInfo{
			Kind:    s.commute.Kind,
			Minutes: s.commute.Minutes,
			Summary: s.commute.Summary,
		}
	}
	for _, name := range s.toggles.EnabledThemes() {
		if s.themes[name] != nil {
			state.ThemesLoaded = append(state.ThemesLoaded, name)
		}
	}
	return state
}

// SetHome replaces or, with nil, clears the home point
func (s *Session) SetHome(ctx context.Context, p *models.LocationPoint) error {
	point, err := normalizePoint(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = point
	s.commitLocked(ctx, changeAll)
	return nil
}

// SetWork replaces or, with nil, clears the work point
func (s *Session) SetWork(ctx context.Context, p *models.LocationPoint) error {
	point, err := normalizePoint(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.work = point
	s.commitLocked(ctx, changeComparison|changeCommute|changeThemes)
	return nil
}

// AddFrequent appends a frequent point. Points on the same coordinates or
// with the same label as an existing one are rejected.
func (s *Session) AddFrequent(ctx context.Context, p models.LocationPoint) (models.FrequentPoint, error) {
	point, err := normalizePoint(&p)
	if err != nil {
		return models.FrequentPoint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fp := range s.frequent {
		if fp.Point.SameCoordinates(*point) || fp.Point.SameLabel(*point) {
			return models.FrequentPoint{}, fmt.Errorf("%w: matches %s", models.ErrDuplicatePoint, fp.ID)
		}
	}

	fp := models.FrequentPoint{ID: uuid.New().String(), Point: *point}
	s.frequent = append(s.frequent, fp)
	s.commitLocked(ctx, changeComparison|changeThemes)
	return fp, nil
}

// RemoveFrequent removes a frequent point by id
func (s *Session) RemoveFrequent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, fp := range s.frequent {
		if fp.ID == id {
			s.frequent = append(s.frequent[:i:i], s.frequent[i+1:]...)
			s.commitLocked(ctx, changeComparison|changeThemes)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", models.ErrPointNotFound, id)
}

// ReorderFrequent puts the frequent points in the order of ids, which must
// name every point exactly once.
func (s *Session) ReorderFrequent(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) != len(s.frequent) {
		return fmt.Errorf("%w: got %d ids for %d points", models.ErrInvalidOrder, len(ids), len(s.frequent))
	}

	byID := make(map[string]models.FrequentPoint, len(s.frequent))
	for _, fp := range s.frequent {
		byID[fp.ID] = fp
	}

	ordered := make([]models.FrequentPoint, 0, len(ids))
	for _, id := range ids {
		fp, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrPointNotFound, id)
		}
		delete(byID, id)
		ordered = append(ordered, fp)
	}

	s.frequent = ordered
	s.commitLocked(ctx, changeComparison|changeThemes)
	return nil
}

// SetMode selects the transport mode
func (s *Session) SetMode(ctx context.Context, mode models.TransportMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == mode {
		return nil
	}
	s.mode = mode
	s.commitLocked(ctx, changeComparison|changeCommute)
	return nil
}

// SetToggles replaces the overlay configuration
func (s *Session) SetToggles(ctx context.Context, toggles models.OverlayToggles) error {
	if err := validateToggles(toggles); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var what change
	old := s.toggles
	if old.AnalyzeCommute != toggles.AnalyzeCommute || old.CommuteMaxMinutes != toggles.CommuteMaxMinutes {
		what |= changeCommute
	}
	if old.AnalyzeGreen != toggles.AnalyzeGreen || old.GreenRadiusMeters != toggles.GreenRadiusMeters {
		what |= changeGreen
	}
	if old.AnalysisRadius != toggles.AnalysisRadius || !sameStrings(old.EnabledThemes(), toggles.EnabledThemes()) {
		what |= changeThemes
	}

	s.toggles = cloneToggles(toggles)
	s.commitLocked(ctx, what)
	return nil
}

// Snapshot returns the serializable preference record
func (s *Session) Snapshot() models.PreferenceSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore replaces every input with the snapshot and stores it
func (s *Session) Restore(ctx context.Context, snapshot models.PreferenceSnapshot) error {
	return s.restore(ctx, snapshot, true)
}

func (s *Session) restore(ctx context.Context, snapshot models.PreferenceSnapshot, persist bool) error {
	home, err := normalizePoint(snapshot.Home)
	if err != nil {
		return err
	}
	work, err := normalizePoint(snapshot.Work)
	if err != nil {
		return err
	}

	mode := snapshot.Mode
	if mode == "" {
		mode = models.ModeCar
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidMode, mode)
	}

	// snapshots written before toggles existed carry none
	toggles := snapshot.Toggles
	if toggles.CommuteMaxMinutes == 0 {
		themes := toggles.Themes
		toggles = models.DefaultOverlayToggles()
		toggles.Themes = themes
	}
	if len(toggles.Themes) == 0 && len(snapshot.HighlightedThemes) > 0 {
		toggles.Themes = make(map[string]bool, len(snapshot.HighlightedThemes))
		for _, name := range snapshot.HighlightedThemes {
			toggles.Themes[name] = true
		}
	}
	if err := validateToggles(toggles); err != nil {
		return err
	}

	frequent := make([]models.FrequentPoint, 0, len(snapshot.Frequent))
	for _, fp := range snapshot.Frequent {
		point, err := normalizePoint(&fp.Point)
		if err != nil {
			return err
		}
		if duplicateOf(frequent, *point) {
			logger.Warn("Dropping duplicate frequent point from snapshot", logger.String("id", fp.ID))
			continue
		}
		if fp.ID == "" {
			fp.ID = uuid.New().String()
		}
		frequent = append(frequent, models.FrequentPoint{ID: fp.ID, Point: *point})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.home, s.work = home, work
	s.frequent = frequent
	s.mode = mode
	s.toggles = cloneToggles(toggles)

	if persist {
		s.commitLocked(ctx, changeAll)
	} else {
		s.refreshLocked(ctx, changeAll)
	}
	return nil
}

// CenterOn moves the map to a reference point
func (s *Session) CenterOn(id string) error {
	if !s.reconciler.CenterOn(id) {
		return fmt.Errorf("%w: %s", models.ErrPointNotFound, id)
	}
	return nil
}

// Map returns the drawn map
func (s *Session) Map() session.MapSnapshot {
	return session.MapSnapshot{
		View:     s.deps.Scene.View(),
		Controls: s.reconciler.Targets(),
		Overlays: s.deps.Scene.Snapshot(),
	}
}

// Comparison returns the published comparison and its projection
func (s *Session) Comparison() session.ComparisonView {
	state := s.deps.Comparison.State()
	return session.ComparisonView{
		Generation: state.Generation,
		Computing:  state.Computing,
		Projection: projection.Project(state.Rows),
	}
}

// commitLocked refreshes everything depending on what changed and stores
// the new preferences.
func (s *Session) commitLocked(ctx context.Context, what change) {
	s.refreshLocked(ctx, what)
	s.persistLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context, what change) {
	if what&changeComparison != 0 {
		s.lastCycle = s.deps.Comparison.Trigger(ctx, models.ComparisonRequest{
			Origins: append([]models.FrequentPoint(nil), s.frequent...),
			Work:    clonePoint(s.work),
			Home:    clonePoint(s.home),
			Mode:    s.mode,
		})
	}
	if what&changeCommute != 0 {
		s.startCommuteLocked()
	}
	if what&changeGreen != 0 {
		s.startParksLocked()
	}
	if what&changeThemes != 0 {
		s.startThemesLocked()
	}
	s.reconcileLocked()
}

func (s *Session) overlayInputLocked() models.OverlayInput {
	themes := make(map[string]*geojson.FeatureCollection, len(s.themes))
	for name, fc := range s.themes {
		themes[name] = fc
	}
	return models.OverlayInput{
		Home:     s.home,
		Work:     s.work,
		Frequent: s.frequent,
		Mode:     s.mode,
		Toggles:  s.toggles,
		Commute:  s.commute,
		Parks:    s.parks,
		Themes:   themes,
	}
}

func (s *Session) reconcileLocked() {
	descriptors := s.deps.Overlay.Build(s.overlayInputLocked())
	s.overlayCount = len(descriptors)
	s.reconciler.Reconcile(descriptors)
}

func (s *Session) snapshotLocked() models.PreferenceSnapshot {
	return models.PreferenceSnapshot{
		Home:              clonePoint(s.home),
		Work:              clonePoint(s.work),
		Frequent:          append([]models.FrequentPoint(nil), s.frequent...),
		Mode:              s.mode,
		Toggles:           cloneToggles(s.toggles),
		HighlightedThemes: s.toggles.EnabledThemes(),
	}
}

// persistLocked stores the snapshot. Failures are logged, the session keeps going.
func (s *Session) persistLocked(ctx context.Context) {
	if s.deps.Prefs == nil {
		return
	}

	snapshot := s.snapshotLocked()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.deps.Prefs.Save(ctx, s.profile, snapshot); err != nil {
		logger.Error("Failed to save preferences",
			logger.String("profile", s.profile),
			logger.Err(err))
		return
	}

	if s.deps.Events == nil {
		return
	}
	event := models.PreferenceEvent{
		Profile:  s.profile,
		Snapshot: snapshot,
		SavedAt:  s.now().UTC().Format(time.RFC3339),
	}
	if err := s.deps.Events.PublishPreferencesSaved(ctx, event); err != nil {
		logger.Warn("Failed to publish preferences event", logger.Err(err))
	}
}

func normalizePoint(p *models.LocationPoint) (*models.LocationPoint, error) {
	if p == nil {
		return nil, nil
	}
	if err := p.Valid(); err != nil {
		return nil, err
	}
	point := *p
	point.Label = utils.NormalizeLabel(point.Label)
	return &point, nil
}

func validateToggles(t models.OverlayToggles) error {
	switch {
	case t.CommuteMaxMinutes < 1 || t.CommuteMaxMinutes > 120:
		return fmt.Errorf("%w: commute_max_minutes %d", models.ErrInvalidToggles, t.CommuteMaxMinutes)
	case !validRadius(t.GreenRadiusMeters):
		return fmt.Errorf("%w: green_radius_meters %v", models.ErrInvalidToggles, t.GreenRadiusMeters)
	case !validRadius(t.AnalysisRadius):
		return fmt.Errorf("%w: analysis_radius_meters %v", models.ErrInvalidToggles, t.AnalysisRadius)
	}
	return nil
}

func validRadius(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 50000
}

func duplicateOf(points []models.FrequentPoint, p models.LocationPoint) bool {
	for _, fp := range points {
		if fp.Point.SameCoordinates(p) || fp.Point.SameLabel(p) {
			return true
		}
	}
	return false
}

func clonePoint(p *models.LocationPoint) *models.LocationPoint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneToggles(t models.OverlayToggles) models.OverlayToggles {
	if t.Themes != nil {
		themes := make(map[string]bool, len(t.Themes))
		for k, v := range t.Themes {
			themes[k] = v
		}
		t.Themes = themes
	}
	return t
}

func sameStrings(a, b []string) bool {
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
