package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestORSProfile(t *testing.T) {
	tests := []struct {
		mode     models.TransportMode
		expected string
	}{
		{models.ModeCar, "driving-car"},
		{models.ModeBike, "cycling-regular"},
		{models.ModeWalk, "foot-walking"},
		{models.ModeTransit, "driving-car"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.expected, ORSProfile(tt.mode))
		})
	}
}

func TestORSGateway_EstimateIsochrone_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/isochrones/cycling-regular", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		var body struct {
			Locations [][]float64 `json:"locations"`
			Range     []float64   `json:"range"`
			Units     string      `json:"units"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, [][]float64{{21.0122, 52.2297}}, body.Locations)
		assert.Equal(t, []float64{1800}, body.Range)
		assert.Equal(t, "m", body.Units)

		_, _ = w.Write([]byte(isochroneBody))
	}))
	defer server.Close()

	gw := newTestORS(server.URL, "test-key")

	fc, ok := gw.EstimateIsochrone(context.Background(), warsaw, models.ModeBike, 1800)

	require.True(t, ok)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.GeoJSONType())
	assert.Equal(t, float64(1800), fc.Features[0].Properties.MustFloat64("value"))
}

func TestORSGateway_EstimateIsochrone_ClampsRange(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Below minimum", 10, MinIsochroneRange},
		{"Above maximum", 10000, MaxIsochroneRange},
		{"Within bounds", 2400, 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []float64
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body struct {
					Range []float64 `json:"range"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				got = body.Range
				_, _ = w.Write([]byte(isochroneBody))
			}))
			defer server.Close()

			_, ok := newTestORS(server.URL, "k").EstimateIsochrone(context.Background(), warsaw, models.ModeCar, tt.input)

			require.True(t, ok)
			assert.Equal(t, []float64{tt.expected}, got)
		})
	}
}

func TestORSGateway_EstimateIsochrone_NoCredentials(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(isochroneBody))
	}))
	defer server.Close()

	fc, ok := newTestORS(server.URL, "").EstimateIsochrone(context.Background(), warsaw, models.ModeCar, 1800)

	assert.False(t, ok)
	assert.Nil(t, fc)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestORSGateway_EstimateIsochrone_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"Server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"Forbidden", http.StatusForbidden, `{"error":"quota"}`},
		{"Undecodable body", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			fc, ok := newTestORS(server.URL, "k").EstimateIsochrone(context.Background(), warsaw, models.ModeWalk, 900)

			assert.False(t, ok)
			assert.Nil(t, fc)
		})
	}
}

func TestORSGateway_OpenBreakerSkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := newTestORS(server.URL, "k")
	gw.breaker = newTestBreaker(1)

	_, ok := gw.EstimateIsochrone(context.Background(), warsaw, models.ModeCar, 1800)
	assert.False(t, ok)
	_, ok = gw.EstimateIsochrone(context.Background(), warsaw, models.ModeCar, 1800)
	assert.False(t, ok)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
