package gateway

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/constants"
	"github.com/piresc/commutemap/internal/pkg/models"
	natspkg "github.com/piresc/commutemap/internal/pkg/nats"
	"github.com/piresc/commutemap/services/session"
)

// PreferenceGW handles NATS publishing for preference events
type PreferenceGW struct {
	natsClient *natspkg.Client
}

// NewPreferenceGW creates a new preference gateway
func NewPreferenceGW(client *natspkg.Client) session.PreferenceGW {
	return &PreferenceGW{
		natsClient: client,
	}
}

// PublishPreferencesSaved publishes a stored snapshot to NATS
func (g *PreferenceGW) PublishPreferencesSaved(ctx context.Context, event models.PreferenceEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectPreferencesSaved, event)
}
