package usecase

import (
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/commute"
	"github.com/piresc/commutemap/services/mapview"
	"github.com/piresc/commutemap/services/overlay"
	"github.com/piresc/commutemap/services/routing"
	"github.com/piresc/commutemap/services/session"
)

// fetchTimeout bounds the background commute analysis and theme fetches
const fetchTimeout = 45 * time.Second

// Deps are the collaborators of a Session. ThemeGW, Prefs and Events may be nil.
type Deps struct {
	Routing    routing.RoutingGW
	Comparison commute.ComparisonUC
	Overlay    overlay.OverlayUC
	ThemeGW    overlay.ThemeGW
	Prefs      session.PreferenceRepo
	Events     session.PreferenceGW
	Scene      *mapview.Scene
}

// Session implements session.SessionUC
type Session struct {
	profile    string
	deps       Deps
	reconciler *mapview.Reconciler
	now        func() time.Time

	mu       sync.Mutex
	home     *models.LocationPoint
	work     *models.LocationPoint
	frequent []models.FrequentPoint
	mode     models.TransportMode
	toggles  models.OverlayToggles

	commute    *models.CommuteAnalysis
	commuteGen uint64
	parks      *geojson.FeatureCollection
	parksGen   uint64
	themes     map[string]*geojson.FeatureCollection
	themeGen   map[string]uint64
	themeReq   map[string]themeRequest

	lastCycle    commute.Cycle
	overlayCount int

	bg sync.WaitGroup
}

// NewSession creates a session with the configured defaults
func NewSession(cfg *models.Config, deps Deps) *Session {
	toggles := models.DefaultOverlayToggles()
	if cfg.Overlay.AnalysisRadius > 0 {
		toggles.AnalysisRadius = cfg.Overlay.AnalysisRadius
	}
	if cfg.Overlay.GreenRadius > 0 {
		toggles.GreenRadiusMeters = cfg.Overlay.GreenRadius
	}

	return &Session{
		profile:    cfg.App.Profile,
		deps:       deps,
		reconciler: mapview.NewReconciler(deps.Scene),
		now:        time.Now,
		mode:       models.ModeCar,
		toggles:    toggles,
		themes:     make(map[string]*geojson.FeatureCollection),
		themeGen:   make(map[string]uint64),
		themeReq:   make(map[string]themeRequest),
	}
}
