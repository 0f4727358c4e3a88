package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, NewPingHandler("commutemap")(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "commutemap", info.ServiceName)
	assert.False(t, info.ServerTime.IsZero())
}

func TestService_CheckAll(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		svc := NewService(logger.NewNopLogger(), nil)
		svc.AddChecker("redis", NewRedisChecker(nil))
		svc.AddChecker("nats", NewNATSChecker(nil))

		resp := svc.CheckAll(context.Background())

		assert.Equal(t, "healthy", resp.Status)
		assert.Len(t, resp.Dependencies, 2)
		assert.Nil(t, resp.Providers)
	})

	t.Run("failing dependency", func(t *testing.T) {
		svc := NewService(logger.NewNopLogger(), nil)
		svc.AddChecker("redis", CheckerFunc(func(context.Context) error {
			return errors.New("connection refused")
		}))

		resp := svc.CheckAll(context.Background())

		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
	})

	t.Run("open provider breaker degrades", func(t *testing.T) {
		defaults := circuitbreaker.DefaultConfig("")
		defaults.FailureThreshold = 1
		defaults.Timeout = time.Hour
		breakers := circuitbreaker.NewManager(logger.NewNopLogger())
		_ = breakers.GetOrCreate("ors", defaults).Execute(context.Background(), func(context.Context) error {
			return errors.New("boom")
		})

		resp := NewService(logger.NewNopLogger(), breakers).CheckAll(context.Background())

		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "open", resp.Providers["ors"].State)
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	svc := NewService(logger.NewNopLogger(), nil)
	svc.AddChecker("redis", CheckerFunc(func(context.Context) error {
		return errors.New("down")
	}))
	RegisterHealthEndpoints(e, "commutemap", "1.0.0", svc)

	tests := []struct {
		path   string
		status int
	}{
		{"/ping", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/health", http.StatusOK},
		{"/health/detailed", http.StatusServiceUnavailable},
		{"/health/ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
