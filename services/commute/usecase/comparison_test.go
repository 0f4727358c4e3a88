package usecase

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/paulmach/orb/geojson"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/commute/mocks"
	routingmocks "github.com/piresc/commutemap/services/routing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	work = models.LocationPoint{Lat: 52.01, Lng: 21.01, Label: "WORK"}
	home = models.LocationPoint{Lat: 52.2297, Lng: 21.0122, Label: "HOME"}
)

func origin(id string, lat, lng float64, label string) models.FrequentPoint {
	return models.FrequentPoint{ID: id, Point: models.LocationPoint{Lat: lat, Lng: lng, Label: label}}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("comparison cycle did not finish")
	}
}

// gatedRouter answers every route immediately, except for modes with a gate,
// which wait until the gate is closed.
type gatedRouter struct {
	gates   map[models.TransportMode]chan struct{}
	minutes map[string]float64
}

func (g *gatedRouter) EstimateIsochrone(ctx context.Context, origin models.LocationPoint, mode models.TransportMode, rangeSeconds float64) (*geojson.FeatureCollection, bool) {
	return nil, false
}

func (g *gatedRouter) EstimateRoute(ctx context.Context, origin, destination models.LocationPoint, mode models.TransportMode) (models.RouteEstimate, bool) {
	if gate, ok := g.gates[mode]; ok {
		<-gate
	}
	return models.RouteEstimate{
		DurationSeconds: g.minutes[origin.Label] * 60,
		DistanceMeters:  1000,
	}, true
}

func TestCompute_DistanceFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouting := routingmocks.NewMockRoutingGW(ctrl)
	uc := NewComparisonUC(mockRouting, nil)

	from := origin("f1", 52.0, 21.0, "Gym")
	mockRouting.EXPECT().
		EstimateRoute(gomock.Any(), from.Point, work, models.ModeCar).
		Return(models.RouteEstimate{}, false)

	rows := uc.Compute(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{from},
		Work:    &work,
		Mode:    models.ModeCar,
	})

	require.Len(t, rows, 1)
	assert.True(t, math.IsNaN(rows[0].WorkMinutes))
	assert.InDelta(t, 1305.75, rows[0].WorkDistanceMeters, 1)
	assert.True(t, math.IsNaN(rows[0].HomeMinutes))
	assert.True(t, math.IsNaN(rows[0].HomeDistanceMeters))
}

func TestCompute_NonFiniteDistanceFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouting := routingmocks.NewMockRoutingGW(ctrl)
	uc := NewComparisonUC(mockRouting, nil)

	from := origin("f1", 52.0, 21.0, "Gym")
	mockRouting.EXPECT().
		EstimateRoute(gomock.Any(), from.Point, work, models.ModeWalk).
		Return(models.RouteEstimate{DurationSeconds: 600, DistanceMeters: math.NaN()}, true)

	rows := uc.Compute(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{from},
		Work:    &work,
		Mode:    models.ModeWalk,
	})

	require.Len(t, rows, 1)
	assert.Equal(t, 10.0, rows[0].WorkMinutes)
	assert.InDelta(t, 1305.75, rows[0].WorkDistanceMeters, 1)
}

func TestCompute_TransitUsesCarForEveryLeg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouting := routingmocks.NewMockRoutingGW(ctrl)
	uc := NewComparisonUC(mockRouting, nil)

	mockRouting.EXPECT().
		EstimateRoute(gomock.Any(), gomock.Any(), gomock.Any(), models.ModeCar).
		Return(models.RouteEstimate{DurationSeconds: 900, DistanceMeters: 5000}, true).
		Times(4)

	rows := uc.Compute(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{origin("a", 52.1, 21.1, "A"), origin("b", 52.2, 21.2, "")},
		Work:    &work,
		Home:    &home,
		Mode:    models.ModeTransit,
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Label)
	assert.Equal(t, "SPOT 2", rows[1].Label)
	assert.Equal(t, "b", rows[1].OriginID)
	assert.Equal(t, 15.0, rows[1].HomeMinutes)
}

func TestCompute_EmptyInputsIssueNoRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouting := routingmocks.NewMockRoutingGW(ctrl)
	uc := NewComparisonUC(mockRouting, nil)

	assert.Empty(t, uc.Compute(context.Background(), models.ComparisonRequest{Work: &work, Mode: models.ModeCar}))
	assert.Empty(t, uc.Compute(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{origin("a", 52.1, 21.1, "A")},
		Mode:    models.ModeCar,
	}))
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{0, 1},
		{20, 1},
		{59, 1},
		{-5, 1},
		{90, 2},
		{612, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Minutes(tt.seconds), "seconds=%v", tt.seconds)
	}
	assert.True(t, math.IsNaN(Minutes(math.NaN())))
	assert.True(t, math.IsNaN(Minutes(math.Inf(1))))
}

func TestTrigger_PublishesRankedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouting := routingmocks.NewMockRoutingGW(ctrl)
	mockGW := mocks.NewMockComparisonGW(ctrl)
	uc := NewComparisonUC(mockRouting, mockGW)

	far := origin("far", 52.3, 21.3, "Far")
	near := origin("near", 52.1, 21.1, "Near")
	lost := origin("lost", 52.4, 21.4, "Lost")

	mockRouting.EXPECT().EstimateRoute(gomock.Any(), far.Point, work, models.ModeBike).
		Return(models.RouteEstimate{DurationSeconds: 1800, DistanceMeters: 9000}, true)
	mockRouting.EXPECT().EstimateRoute(gomock.Any(), near.Point, work, models.ModeBike).
		Return(models.RouteEstimate{DurationSeconds: 300, DistanceMeters: 1500}, true)
	mockRouting.EXPECT().EstimateRoute(gomock.Any(), lost.Point, work, models.ModeBike).
		Return(models.RouteEstimate{}, false)

	mockGW.EXPECT().
		PublishComparison(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.ComparisonEvent) error {
			assert.Equal(t, uint64(1), event.Generation)
			assert.Equal(t, models.ModeBike, event.Mode)
			assert.Len(t, event.Rows, 2)
			assert.NotEmpty(t, event.PublishedAt)
			return nil
		})

	var published []models.ComparisonState
	uc.OnPublish(func(state models.ComparisonState) {
		published = append(published, state)
	})

	cycle := uc.Trigger(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{far, near, lost},
		Work:    &work,
		Mode:    models.ModeBike,
	})
	assert.Equal(t, uint64(1), cycle.Generation())
	waitDone(t, cycle.Done())

	state := uc.State()
	assert.Equal(t, uint64(1), state.Generation)
	assert.False(t, state.Computing)
	require.Len(t, state.Rows, 2)
	assert.Equal(t, "Near", state.Rows[0].Label)
	assert.Equal(t, "Far", state.Rows[1].Label)
	require.Len(t, published, 1)
	assert.Equal(t, state.Generation, published[0].Generation)
	require.Len(t, published[0].Rows, 2)
	for i, row := range published[0].Rows {
		assert.Equal(t, state.Rows[i].Label, row.Label)
		assert.Equal(t, state.Rows[i].WorkMinutes, row.WorkMinutes)
		assert.True(t, math.IsNaN(row.HomeMinutes))
	}
}

func TestTrigger_EmptyInputPublishesEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewComparisonUC(routingmocks.NewMockRoutingGW(ctrl), nil)

	cycle := uc.Trigger(context.Background(), models.ComparisonRequest{Mode: models.ModeCar})
	waitDone(t, cycle.Done())

	state := uc.State()
	assert.Equal(t, uint64(1), state.Generation)
	assert.False(t, state.Computing)
	assert.NotNil(t, state.Rows)
	assert.Empty(t, state.Rows)

	body, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"rows":[]`)
}

func TestState_BeforeFirstCycleHasEmptyRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := NewComparisonUC(routingmocks.NewMockRoutingGW(ctrl), nil).State()
	assert.Equal(t, uint64(0), state.Generation)
	assert.NotNil(t, state.Rows)

	body, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"rows":[]`)
}

func TestTrigger_SupersededGenerationIsDiscarded(t *testing.T) {
	carGate := make(chan struct{})
	router := &gatedRouter{
		gates:   map[models.TransportMode]chan struct{}{models.ModeCar: carGate},
		minutes: map[string]float64{"A": 12, "B": 7},
	}
	uc := NewComparisonUC(router, nil)

	a := origin("a", 52.1, 21.1, "A")
	b := origin("b", 52.2, 21.2, "B")

	first := uc.Trigger(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{a},
		Work:    &work,
		Mode:    models.ModeCar,
	})
	assert.True(t, uc.State().Computing)

	second := uc.Trigger(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{a, b},
		Work:    &work,
		Mode:    models.ModeBike,
	})
	waitDone(t, second.Done())

	close(carGate)
	waitDone(t, first.Done())

	state := uc.State()
	assert.Equal(t, uint64(2), second.Generation())
	assert.Equal(t, uint64(2), state.Generation)
	assert.False(t, state.Computing)
	require.Len(t, state.Rows, 2)
	assert.Equal(t, "B", state.Rows[0].Label)
	assert.Equal(t, "A", state.Rows[1].Label)
}

func TestTrigger_LatestStillComputingAfterStaleFinishes(t *testing.T) {
	carGate, walkGate := make(chan struct{}), make(chan struct{})
	router := &gatedRouter{
		gates: map[models.TransportMode]chan struct{}{
			models.ModeCar:  carGate,
			models.ModeWalk: walkGate,
		},
		minutes: map[string]float64{"A": 12},
	}
	uc := NewComparisonUC(router, nil)
	a := origin("a", 52.1, 21.1, "A")

	first := uc.Trigger(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{a},
		Work:    &work,
		Mode:    models.ModeCar,
	})
	second := uc.Trigger(context.Background(), models.ComparisonRequest{
		Origins: []models.FrequentPoint{a},
		Work:    &work,
		Mode:    models.ModeWalk,
	})
	close(carGate)
	waitDone(t, first.Done())

	state := uc.State()
	assert.True(t, state.Computing)
	assert.Equal(t, uint64(0), state.Generation)
	assert.Empty(t, state.Rows)

	close(walkGate)
	waitDone(t, second.Done())
	assert.False(t, uc.State().Computing)
	assert.Equal(t, uint64(2), uc.State().Generation)
}
