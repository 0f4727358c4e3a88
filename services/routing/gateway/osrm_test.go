package gateway

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRMProfile(t *testing.T) {
	assert.Equal(t, "driving", OSRMProfile(models.ModeCar))
	assert.Equal(t, "cycling", OSRMProfile(models.ModeBike))
	assert.Equal(t, "walking", OSRMProfile(models.ModeWalk))
	assert.Equal(t, "driving", OSRMProfile(models.ModeTransit))
}

func TestOSRMGateway_EstimateRoute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/route/v1/driving/21.0122,52.2297;20.9846,52.2319", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
		_, _ = w.Write([]byte(routeBody))
	}))
	defer server.Close()

	gw := newTestOSRM(server.URL, newTestBreaker(5))

	est, ok := gw.EstimateRoute(context.Background(), warsaw, office, models.ModeTransit)

	require.True(t, ok)
	assert.Equal(t, 612.4, est.DurationSeconds)
	assert.Equal(t, 2450.7, est.DistanceMeters)
	require.Len(t, est.Geometry.Features, 1)
	assert.Equal(t, "LineString", est.Geometry.Features[0].Geometry.GeoJSONType())
}

func TestOSRMGateway_EstimateRoute_MissingDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"duration":42}]}`))
	}))
	defer server.Close()

	est, ok := newTestOSRM(server.URL, newTestBreaker(5)).EstimateRoute(context.Background(), warsaw, office, models.ModeWalk)

	require.True(t, ok)
	assert.Equal(t, 42.0, est.DurationSeconds)
	assert.True(t, math.IsNaN(est.DistanceMeters))
	assert.Empty(t, est.Geometry.Features)
}

func TestOSRMGateway_EstimateRoute_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"No route code", http.StatusBadRequest, `{"code":"NoRoute","message":"Impossible route"}`},
		{"Non-ok code with 200", http.StatusOK, `{"code":"InvalidQuery","routes":[]}`},
		{"Empty routes", http.StatusOK, `{"code":"Ok","routes":[]}`},
		{"Server error", http.StatusServiceUnavailable, ``},
		{"Garbage", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			_, ok := newTestOSRM(server.URL, newTestBreaker(5)).EstimateRoute(context.Background(), warsaw, office, models.ModeCar)
			assert.False(t, ok)
		})
	}
}

func TestOSRMGateway_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, ok := newTestOSRM(url, newTestBreaker(5)).EstimateRoute(context.Background(), warsaw, office, models.ModeCar)
	assert.False(t, ok)
}

func TestOSRMGateway_NoRouteDoesNotTripBreaker(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"NoRoute"}`))
	}))
	defer server.Close()

	gw := newTestOSRM(server.URL, newTestBreaker(1))
	for i := 0; i < 3; i++ {
		_, ok := gw.EstimateRoute(context.Background(), warsaw, office, models.ModeCar)
		assert.False(t, ok)
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
