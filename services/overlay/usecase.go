package overlay

import "github.com/piresc/commutemap/internal/pkg/models"

// Circle and layer ids produced by the descriptor store
const (
	CircleAnalysisRange = "analysis-range"
	CircleGreenRadius   = "green-radius"

	LayerIsochrones  = "isochrones"
	LayerRoute       = "route"
	LayerParks       = "parks"
	ThemeLayerPrefix = "theme-"
)

// OverlayUC computes what should currently be on the map
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/commutemap/services/overlay OverlayUC
type OverlayUC interface {
	Build(in models.OverlayInput) []models.Descriptor
}
