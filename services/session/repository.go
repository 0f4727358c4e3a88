package session

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// PreferenceRepo stores preference snapshots per profile
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/commutemap/services/session PreferenceRepo
type PreferenceRepo interface {
	Save(ctx context.Context, profile string, snapshot models.PreferenceSnapshot) error
	Load(ctx context.Context, profile string) (models.PreferenceSnapshot, error)
	Delete(ctx context.Context, profile string) error
}
