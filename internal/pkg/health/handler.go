package health

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	"github.com/piresc/commutemap/internal/pkg/database"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/nats"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// Checker checks a single dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// NewRedisChecker checks the Redis connection. A nil client is skipped.
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewNATSChecker checks the NATS connection. A nil client is skipped.
func NewNATSChecker(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		if !client.IsConnected() {
			return errors.New("NATS not connected")
		}
		return nil
	})
}

// Service runs the registered dependency checks
type Service struct {
	checkers map[string]Checker
	breakers *circuitbreaker.Manager
	logger   *logger.ZapLogger
}

// NewService creates a new health service. breakers may be nil.
func NewService(l *logger.ZapLogger, breakers *circuitbreaker.Manager) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		breakers: breakers,
		logger:   l,
	}
}

// AddChecker registers a checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Response represents the detailed health response
type Response struct {
	Status       string                          `json:"status"`
	Timestamp    time.Time                       `json:"timestamp"`
	Service      string                          `json:"service"`
	Version      string                          `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo       `json:"dependencies"`
	Providers    map[string]circuitbreaker.Stats `json:"providers,omitempty"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs every registered check. Open provider breakers degrade the
// status but never make the service unhealthy.
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			s.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	if s.breakers != nil {
		response.Providers = s.breakers.Stats()
		if response.Status == "healthy" {
			for _, stats := range response.Providers {
				if stats.State != circuitbreaker.StateClosed.String() {
					response.Status = "degraded"
					break
				}
			}
		}
	}

	return response
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	healthGroup := e.Group("/health")

	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := svc.CheckAll(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := svc.CheckAll(ctx)
		if response.Status == "unhealthy" {
			response.Service = serviceName
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})
}
