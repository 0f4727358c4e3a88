package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/commutemap/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "commutemap")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")
	configs.App.Profile = GetEnv("APP_PROFILE", "default")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.RateLimit = GetEnvAsInt("RATE_LIMIT_REQUESTS", 120)
	configs.Server.RateLimitPeriod = GetEnvAsInt("RATE_LIMIT_PERIOD_SECONDS", 60)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)
	configs.Redis.PreferenceTTL = GetEnvAsInt("REDIS_PREFERENCE_TTL_HOURS", 0)
	configs.Redis.Enabled = GetEnvAsBool("REDIS_ENABLED", true)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NATS.Enabled = GetEnvAsBool("NATS_ENABLED", false)

	// Routing config
	configs.Routing.ORSAPIKey = GetEnv("ORS_API_KEY", "")
	configs.Routing.ORSBaseURL = GetEnv("ORS_BASE_URL", "https://api.openrouteservice.org")
	configs.Routing.OSRMBaseURL = GetEnv("OSRM_BASE_URL", "https://router.project-osrm.org")
	configs.Routing.TimeoutSeconds = GetEnvAsInt("ROUTING_TIMEOUT_SECONDS", 10)
	configs.Routing.CacheSize = GetEnvAsInt("ROUTING_CACHE_SIZE", 1000)
	configs.Routing.CacheTTLMinutes = GetEnvAsInt("ROUTING_CACHE_TTL_MINUTES", 30)
	configs.Routing.BreakerFailures = uint32(GetEnvAsInt("ROUTING_BREAKER_FAILURES", 5))
	configs.Routing.BreakerCooldownSeconds = GetEnvAsInt("ROUTING_BREAKER_COOLDOWN_SECONDS", 60)

	// Overlay config
	configs.Overlay.OverpassURL = GetEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	configs.Overlay.TimeoutSeconds = GetEnvAsInt("OVERPASS_TIMEOUT_SECONDS", 30)
	configs.Overlay.Retries = GetEnvAsInt("OVERPASS_RETRIES", 2)
	configs.Overlay.AnalysisRadius = GetEnvAsFloat("OVERLAY_ANALYSIS_RADIUS_METERS", 3000)
	configs.Overlay.GreenRadius = GetEnvAsFloat("OVERLAY_GREEN_RADIUS_METERS", 1000)
	configs.Overlay.DefaultCenterLat = GetEnvAsFloat("MAP_DEFAULT_CENTER_LAT", 52.2297)
	configs.Overlay.DefaultCenterLng = GetEnvAsFloat("MAP_DEFAULT_CENTER_LNG", 21.0122)
	configs.Overlay.DefaultZoom = GetEnvAsInt("MAP_DEFAULT_ZOOM", 12)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
