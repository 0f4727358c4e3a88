package session

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/commute/projection"
	"github.com/piresc/commutemap/services/mapview"
)

// MapSnapshot is what HTTP clients need to draw the current map
type MapSnapshot struct {
	View     mapview.View               `json:"view"`
	Controls []mapview.ControlTarget    `json:"controls"`
	Overlays *geojson.FeatureCollection `json:"overlays"`
}

// ComparisonView is the published comparison with its display projection
type ComparisonView struct {
	Generation uint64          `json:"generation"`
	Computing  bool            `json:"computing"`
	Projection projection.View `json:"projection"`
}

// SessionUC is the single writer of the user's inputs and the map
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/commutemap/services/session SessionUC
type SessionUC interface {
	State() models.SessionState
	SetHome(ctx context.Context, p *models.LocationPoint) error
	SetWork(ctx context.Context, p *models.LocationPoint) error
	AddFrequent(ctx context.Context, p models.LocationPoint) (models.FrequentPoint, error)
	RemoveFrequent(ctx context.Context, id string) error
	ReorderFrequent(ctx context.Context, ids []string) error
	SetMode(ctx context.Context, mode models.TransportMode) error
	SetToggles(ctx context.Context, toggles models.OverlayToggles) error
	Snapshot() models.PreferenceSnapshot
	Restore(ctx context.Context, snapshot models.PreferenceSnapshot) error
	CenterOn(id string) error
	Map() MapSnapshot
	Comparison() ComparisonView
}
