package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/utils"
	"github.com/piresc/commutemap/services/commute"
	"github.com/piresc/commutemap/services/routing"
)

type cycle struct {
	generation uint64
	done       chan struct{}
}

func (c *cycle) Generation() uint64 { return c.generation }
func (c *cycle) Done() <-chan struct{} { return c.done }

// Trigger starts a new generation and returns without waiting for it.
// The previous generation's context is cancelled; its results are discarded
// either way when they arrive.
func (uc *ComparisonUC) Trigger(ctx context.Context, req models.ComparisonRequest) commute.Cycle {
	cycleCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	uc.mu.Lock()
	uc.latest++
	c := &cycle{generation: uc.latest, done: make(chan struct{})}
	if uc.cancel != nil {
		uc.cancel()
	}
	uc.cancel = cancel
	uc.state.Computing = true
	uc.mu.Unlock()

	logger.Debug("Comparison cycle triggered",
		logger.Uint64("generation", c.generation),
		logger.Int("origins", len(req.Origins)),
		logger.String("mode", string(req.Mode)))

	go func() {
		defer close(c.done)
		defer cancel()
		rows := uc.Compute(cycleCtx, req)
		uc.publish(cycleCtx, c.generation, req.Mode, rows)
	}()

	return c
}

// State returns a copy of the published state
func (uc *ComparisonUC) State() models.ComparisonState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state := uc.state
	state.Rows = make([]models.ComparisonRow, 0, len(uc.state.Rows))
	state.Rows = append(state.Rows, uc.state.Rows...)
	return state
}

// Compute runs every origin/destination leg concurrently and returns one row
// per origin in input order, unranked. Legs fail independently.
func (uc *ComparisonUC) Compute(ctx context.Context, req models.ComparisonRequest) []models.ComparisonRow {
	if len(req.Origins) == 0 || (req.Work == nil && req.Home == nil) {
		return nil
	}

	mode := routing.EffectiveMode(req.Mode)
	work := make([]leg, len(req.Origins))
	home := make([]leg, len(req.Origins))

	var wg sync.WaitGroup
	for i, origin := range req.Origins {
		work[i], home[i] = missingLeg(), missingLeg()
		if req.Work != nil {
			wg.Add(1)
			go func(i int, from models.LocationPoint) {
				defer wg.Done()
				work[i] = uc.estimateLeg(ctx, from, *req.Work, mode)
			}(i, origin.Point)
		}
		if req.Home != nil {
			wg.Add(1)
			go func(i int, from models.LocationPoint) {
				defer wg.Done()
				home[i] = uc.estimateLeg(ctx, from, *req.Home, mode)
			}(i, origin.Point)
		}
	}
	wg.Wait()

	rows := make([]models.ComparisonRow, len(req.Origins))
	for i, origin := range req.Origins {
		row := models.NewComparisonRow(origin.ID, originLabel(origin, i))
		row.WorkMinutes, row.WorkDistanceMeters = work[i].minutes, work[i].meters
		row.HomeMinutes, row.HomeDistanceMeters = home[i].minutes, home[i].meters
		rows[i] = row
	}
	return rows
}

func (uc *ComparisonUC) publish(ctx context.Context, generation uint64, mode models.TransportMode, rows []models.ComparisonRow) {
	ranked := RankRows(rows)

	uc.mu.Lock()
	if generation != uc.latest {
		uc.mu.Unlock()
		logger.Debug("Discarding stale comparison generation",
			logger.Uint64("generation", generation))
		return
	}
	uc.state = models.ComparisonState{
		Generation: generation,
		Computing:  false,
		Rows:       ranked,
	}
	state := uc.state
	listeners := append([]commute.Listener(nil), uc.listeners...)
	uc.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}

	if uc.events == nil {
		return
	}
	event := models.ComparisonEvent{
		Generation:  generation,
		Mode:        mode,
		Rows:        ranked,
		PublishedAt: uc.now().UTC().Format(time.RFC3339),
	}
	if err := uc.events.PublishComparison(ctx, event); err != nil {
		logger.Warn("Failed to publish comparison event",
			logger.Uint64("generation", generation),
			logger.Err(err))
	}
}

type leg struct {
	minutes float64
	meters  float64
}

func missingLeg() leg {
	return leg{minutes: math.NaN(), meters: math.NaN()}
}

// estimateLeg asks the point-to-point tier. Without an answer, or without a
// finite distance, the distance falls back to the equirectangular estimate;
// duration has no substitute.
func (uc *ComparisonUC) estimateLeg(ctx context.Context, from, to models.LocationPoint, mode models.TransportMode) leg {
	result := missingLeg()

	est, ok := uc.routingGW.EstimateRoute(ctx, from, to, mode)
	if ok {
		result.minutes = Minutes(est.DurationSeconds)
		result.meters = est.DistanceMeters
	}
	if !isFinite(result.meters) {
		result.meters = utils.EquirectangularMeters(from, to)
	}
	return result
}

// Minutes converts seconds to whole minutes, never below 1.
// Non-finite input stays NaN.
func Minutes(seconds float64) float64 {
	if !isFinite(seconds) {
		return math.NaN()
	}
	return math.Max(1, math.Round(seconds/60))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func originLabel(origin models.FrequentPoint, index int) string {
	if origin.Point.Label != "" {
		return origin.Point.Label
	}
	return fmt.Sprintf("SPOT %d", index+1)
}
