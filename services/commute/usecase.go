package commute

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// Cycle is one trigger-to-completion run of the comparison engine
type Cycle interface {
	Generation() uint64
	// Done is closed once the cycle has published or been discarded
	Done() <-chan struct{}
}

// Listener is notified with the new state every time a generation publishes
type Listener func(state models.ComparisonState)

// ComparisonUC computes and ranks travel times from every frequent point to work and home
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/commutemap/services/commute ComparisonUC
type ComparisonUC interface {
	Trigger(ctx context.Context, req models.ComparisonRequest) Cycle
	State() models.ComparisonState
	Compute(ctx context.Context, req models.ComparisonRequest) []models.ComparisonRow
}
