package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Logger  LoggerConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Routing RoutingConfig
	Overlay OverlayConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	Profile     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RateLimit       int // requests per period and client, 0 disables
	RateLimitPeriod int // in seconds
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host          string
	Port          int
	Password      string
	DB            int
	PoolSize      int
	PreferenceTTL int // in hours, 0 keeps snapshots forever
	Enabled       bool
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL     string
	Enabled bool
}

// RoutingConfig contains the routing providers configuration
type RoutingConfig struct {
	ORSAPIKey              string
	ORSBaseURL             string
	OSRMBaseURL            string
	TimeoutSeconds         int
	CacheSize              int
	CacheTTLMinutes        int
	BreakerFailures        uint32
	BreakerCooldownSeconds int
}

// OverlayConfig contains overlay defaults and the thematic provider endpoint
type OverlayConfig struct {
	OverpassURL      string
	TimeoutSeconds   int
	Retries          int
	AnalysisRadius   float64
	GreenRadius      float64
	DefaultCenterLat float64
	DefaultCenterLng float64
	DefaultZoom      int
}
