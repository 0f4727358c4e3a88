package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/circuitbreaker"
	"github.com/piresc/commutemap/internal/pkg/config"
	"github.com/piresc/commutemap/internal/pkg/constants"
	"github.com/piresc/commutemap/internal/pkg/database"
	"github.com/piresc/commutemap/internal/pkg/health"
	"github.com/piresc/commutemap/internal/pkg/logger"
	"github.com/piresc/commutemap/internal/pkg/middleware"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/pkg/nats"
	"github.com/piresc/commutemap/internal/pkg/server"
	"github.com/piresc/commutemap/internal/pkg/websocket"
	"github.com/piresc/commutemap/services/commute"
	commuteGateway "github.com/piresc/commutemap/services/commute/gateway"
	commuteUsecase "github.com/piresc/commutemap/services/commute/usecase"
	"github.com/piresc/commutemap/services/mapview"
	overlayGateway "github.com/piresc/commutemap/services/overlay/gateway"
	overlayUsecase "github.com/piresc/commutemap/services/overlay/usecase"
	routingGateway "github.com/piresc/commutemap/services/routing/gateway"
	"github.com/piresc/commutemap/services/session"
	sessionGateway "github.com/piresc/commutemap/services/session/gateway"
	"github.com/piresc/commutemap/services/session/handler"
	sessionRepository "github.com/piresc/commutemap/services/session/repository"
	sessionUsecase "github.com/piresc/commutemap/services/session/usecase"
)

func main() {
	appName := "commute-map"
	configPath := "config/commute.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("profile", configs.App.Profile),
	)

	// Components stopped after the HTTP listener drains, last registered first
	shutdown := server.NewShutdownManager(zapLogger)

	// Redis keeps preferences and rate limit windows
	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", server.CloseFunc(redisClient.Close))
	}

	var natsClient *nats.Client
	if configs.NATS.Enabled {
		natsClient, err = nats.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdown.Register("nats", server.CloseFunc(func() error {
			natsClient.Close()
			return nil
		}))

		logger.Info("NATS client initialized successfully",
			logger.String("url", configs.NATS.URL),
			logger.Bool("connected", natsClient.IsConnected()))
	}

	// Providers
	breakers := circuitbreaker.NewManager(zapLogger)
	routingGW := routingGateway.NewRoutingGW(configs.Routing, breakers)
	overpassCfg := routingGateway.BreakerConfig(configs.Routing)
	overpassCfg.Name = overlayGateway.ProviderName
	themeGW := overlayGateway.NewOverpassGateway(configs.Overlay,
		breakers.GetOrCreate(overlayGateway.ProviderName, overpassCfg))

	// Event gateways
	var comparisonGW commute.ComparisonGW
	var preferenceGW session.PreferenceGW
	if natsClient != nil {
		comparisonGW = commuteGateway.NewComparisonGW(natsClient)
		preferenceGW = sessionGateway.NewPreferenceGW(natsClient)
	}

	var preferenceRepo session.PreferenceRepo
	if redisClient != nil {
		preferenceRepo = sessionRepository.NewPreferenceRepo(redisClient, configs.Redis)
	}

	// Usecases
	comparisonUC := commuteUsecase.NewComparisonUC(routingGW, comparisonGW)
	stream := websocket.NewManager()
	comparisonUC.OnPublish(func(state models.ComparisonState) {
		logger.Info("Comparison published",
			logger.Uint64("generation", state.Generation),
			logger.Int("rows", len(state.Rows)),
			logger.Int("viewers", stream.Count()))
		if err := stream.Broadcast(constants.EventComparison, state); err != nil {
			logger.Warn("Failed to stream comparison", logger.Err(err))
		}
	})

	scene := mapview.NewScene(models.LocationPoint{
		Lat: configs.Overlay.DefaultCenterLat,
		Lng: configs.Overlay.DefaultCenterLng,
	}, configs.Overlay.DefaultZoom)

	sessionUC := sessionUsecase.NewSession(configs, sessionUsecase.Deps{
		Routing:    routingGW,
		Comparison: comparisonUC,
		Overlay:    overlayUsecase.NewOverlayUC(),
		ThemeGW:    themeGW,
		Prefs:      preferenceRepo,
		Events:     preferenceGW,
		Scene:      scene,
	})

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessionUC.Init(initCtx); err != nil {
		zapLogger.Fatal("Failed to initialize session", logger.Err(err))
	}
	initCancel()
	shutdown.Register("session", server.WaitFunc(sessionUC.Wait))
	shutdown.Register("stream", server.CloseFunc(stream.Close))

	// Initialize Echo server
	e := echo.New()
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	mwConfig := middleware.Config{
		Logger:      zapLogger,
		RateLimit:   configs.Server.RateLimit,
		RatePeriod:  time.Duration(configs.Server.RateLimitPeriod) * time.Second,
		ServiceName: appName,
	}
	if redisClient != nil {
		mwConfig.Redis = redisClient.GetClient()
	}
	mw := middleware.NewMiddleware(mwConfig)

	healthService := health.NewService(zapLogger, breakers)
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	}
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	handler.NewHandler(sessionUC, stream, configs).RegisterRoutes(e, mw)

	gs := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := gs.Start(); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
