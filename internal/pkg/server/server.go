package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.ZapLogger
	addr     string
	timeout  time.Duration
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown.
// Components registered on sm are stopped after the listener drains.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig, sm *ShutdownManager) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	return &GracefulServer{
		echo:     e,
		logger:   zapLogger,
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout:  timeout,
		shutdown: sm,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	failed := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		s.logger.Error("HTTP server failed", logger.Err(err))
		if sdErr := s.Shutdown(); sdErr != nil {
			return errors.Join(err, sdErr)
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}
	return s.Shutdown()
}

// Shutdown drains the listener and then stops registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		errs = append(errs, err)
	}
	if s.shutdown != nil {
		if err := s.shutdown.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	s.logger.Info("Server shutdown completed")
	return errors.Join(errs...)
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions. A failing component
// does not stop the others.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.components)))

	var errs []error
	for i := len(sm.components) - 1; i >= 0; i-- {
		c := sm.components[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}

// WaitFunc adapts a blocking wait into a cleanup function bounded by the
// shutdown context.
func WaitFunc(wait func()) func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// CloseFunc adapts an io.Closer style function into a cleanup function
func CloseFunc(closeFn func() error) func(context.Context) error {
	return func(context.Context) error {
		return closeFn()
	}
}
