package usecase

import (
	"sync"
	"time"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/commute"
	"github.com/piresc/commutemap/services/routing"
)

// ComparisonUC implements commute.ComparisonUC
type ComparisonUC struct {
	routingGW routing.RoutingGW
	events    commute.ComparisonGW
	now       func() time.Time

	mu        sync.Mutex
	latest    uint64
	state     models.ComparisonState
	cancel    func()
	listeners []commute.Listener
}

// NewComparisonUC creates the comparison engine. events may be nil.
func NewComparisonUC(routingGW routing.RoutingGW, events commute.ComparisonGW) *ComparisonUC {
	return &ComparisonUC{
		routingGW: routingGW,
		events:    events,
		now:       time.Now,
		state:     models.ComparisonState{Rows: []models.ComparisonRow{}},
	}
}

// OnPublish registers an in-process listener
func (uc *ComparisonUC) OnPublish(l commute.Listener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, l)
}
