package session

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// PreferenceGW announces stored preference snapshots
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/commutemap/services/session PreferenceGW
type PreferenceGW interface {
	PublishPreferencesSaved(ctx context.Context, event models.PreferenceEvent) error
}
