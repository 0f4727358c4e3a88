package gateway

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/constants"
	"github.com/piresc/commutemap/internal/pkg/models"
	natspkg "github.com/piresc/commutemap/internal/pkg/nats"
	"github.com/piresc/commutemap/services/commute"
)

// ComparisonGW handles NATS publishing for comparison events
type ComparisonGW struct {
	natsClient *natspkg.Client
}

// NewComparisonGW creates a new comparison gateway
func NewComparisonGW(client *natspkg.Client) commute.ComparisonGW {
	return &ComparisonGW{
		natsClient: client,
	}
}

// PublishComparison publishes a ranked comparison to NATS
func (g *ComparisonGW) PublishComparison(ctx context.Context, event models.ComparisonEvent) error {
	if event.Rows == nil {
		event.Rows = []models.ComparisonRow{}
	}
	return g.natsClient.PublishJSON(constants.SubjectComparisonPublished, event)
}
