package commute

import (
	"context"

	"github.com/piresc/commutemap/internal/pkg/models"
)

// ComparisonGW announces published comparison results
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/commutemap/services/commute ComparisonGW
type ComparisonGW interface {
	PublishComparison(ctx context.Context, event models.ComparisonEvent) error
}
