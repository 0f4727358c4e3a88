package usecase

import (
	"context"
	"math"

	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/overlay"
	commuteuc "github.com/piresc/commutemap/services/commute/usecase"
	overlayuc "github.com/piresc/commutemap/services/overlay/usecase"
)

// themeRequest identifies what a theme was last fetched for
type themeRequest struct {
	lat, lng float64
	radius   float64
}

// startCommuteLocked replaces the commute analysis. The previous shape stays
// drawn until the new one arrives.
func (s *Session) startCommuteLocked() {
	s.commuteGen++
	gen := s.commuteGen

	if !s.toggles.AnalyzeCommute || s.home == nil {
		s.commute = nil
		return
	}

	home, work := *s.home, clonePoint(s.work)
	mode, maxMinutes := s.mode, s.toggles.CommuteMaxMinutes

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		analysis := s.analyzeCommute(ctx, home, work, mode, maxMinutes)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.commuteGen {
			logger.Debug("Dropping superseded commute analysis", logger.Uint64("generation", gen))
			return
		}
		if analysis == nil {
			logger.Info("No commute analysis available", logger.String("mode", string(mode)))
		}
		s.commute = analysis
		s.reconcileLocked()
	}()
}

// analyzeCommute prefers a reachability area around home and falls back to
// the home to work route.
func (s *Session) analyzeCommute(ctx context.Context, home models.LocationPoint, work *models.LocationPoint, mode models.TransportMode, maxMinutes int) *models.CommuteAnalysis {
	minutes := float64(maxMinutes)
	if fc, ok := s.deps.Routing.EstimateIsochrone(ctx, home, mode, minutes*60); ok && fc != nil {
		return &models.CommuteAnalysis{
			Kind:     models.AnalysisIsochrone,
			Features: fc,
			Minutes:  minutes,
			Summary:  overlayuc.CommuteSummary(models.AnalysisIsochrone, minutes, mode),
		}
	}

	if work == nil {
		return nil
	}
	est, ok := s.deps.Routing.EstimateRoute(ctx, home, *work, mode)
	if !ok || est.Geometry == nil {
		return nil
	}

	// a route without a duration cannot be summarised
	routeMinutes := commuteuc.Minutes(est.DurationSeconds)
	if math.IsNaN(routeMinutes) {
		return nil
	}
	return &models.CommuteAnalysis{
		Kind:     models.AnalysisRoute,
		Features: est.Geometry,
		Minutes:  routeMinutes,
		Summary:  overlayuc.CommuteSummary(models.AnalysisRoute, routeMinutes, mode),
	}
}

func (s *Session) startParksLocked() {
	s.parksGen++
	gen := s.parksGen

	if !s.toggles.AnalyzeGreen || s.home == nil || s.deps.ThemeGW == nil {
		s.parks = nil
		return
	}

	home, radius := *s.home, s.toggles.GreenRadiusMeters

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		fc, err := s.deps.ThemeGW.FetchTheme(ctx, overlay.ThemeGreen, home, radius)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.parksGen {
			return
		}
		if err != nil {
			logger.Warn("Failed to load green areas", logger.Err(err))
			fc = nil
		}
		s.parks = fc
		s.reconcileLocked()
	}()
}

// startThemesLocked fetches the enabled themes around the map center. A
// theme is only fetched again when its center or radius moved.
func (s *Session) startThemesLocked() {
	enabled := make(map[string]bool)
	for _, name := range s.toggles.EnabledThemes() {
		enabled[name] = true
	}
	for name := range s.themes {
		if !enabled[name] {
			s.dropThemeLocked(name)
		}
	}
	for name := range s.themeReq {
		if !enabled[name] {
			s.dropThemeLocked(name)
		}
	}

	center, ok := s.overlayInputLocked().MapCenter()
	radius := s.toggles.AnalysisRadius
	if !ok || radius <= 0 || s.deps.ThemeGW == nil {
		for name := range enabled {
			s.dropThemeLocked(name)
		}
		return
	}

	req := themeRequest{lat: center.Lat, lng: center.Lng, radius: radius}
	for name := range enabled {
		if prev, ok := s.themeReq[name]; ok && prev == req {
			continue
		}
		s.themeGen[name]++
		s.themeReq[name] = req
		s.fetchThemeLocked(name, s.themeGen[name], center, radius)
	}
}

func (s *Session) dropThemeLocked(name string) {
	s.themeGen[name]++
	delete(s.themes, name)
	delete(s.themeReq, name)
}

func (s *Session) fetchThemeLocked(name string, gen uint64, center models.LocationPoint, radius float64) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		fc, err := s.deps.ThemeGW.FetchTheme(ctx, name, center, radius)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.themeGen[name] {
			return
		}
		if err != nil {
			logger.Warn("Failed to load theme",
				logger.String("theme", name),
				logger.Err(err))
			delete(s.themes, name)
			delete(s.themeReq, name)
		} else {
			s.themes[name] = fc
		}
		s.reconcileLocked()
	}()
}
