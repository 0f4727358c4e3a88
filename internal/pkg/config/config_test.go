package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "default", cfg.App.Profile)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Server.RateLimit)
	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, 1000, cfg.Routing.CacheSize)
	assert.Equal(t, uint32(5), cfg.Routing.BreakerFailures)
	assert.Equal(t, 2, cfg.Overlay.Retries)
	assert.Equal(t, 3000.0, cfg.Overlay.AnalysisRadius)
	assert.Equal(t, 12, cfg.Overlay.DefaultZoom)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PROFILE", "alice")
	t.Setenv("SERVER_PORT", "8181")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("ROUTING_BREAKER_FAILURES", "2")
	t.Setenv("OVERLAY_GREEN_RADIUS_METERS", "750.5")
	t.Setenv("MAP_DEFAULT_ZOOM", "not-a-number")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "alice", cfg.App.Profile)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, uint32(2), cfg.Routing.BreakerFailures)
	assert.Equal(t, 750.5, cfg.Overlay.GreenRadius)
	assert.Equal(t, 12, cfg.Overlay.DefaultZoom)
}

func TestInitConfig_LoadsFileLocally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commute.env")
	require.NoError(t, os.WriteFile(path, []byte("ORS_API_KEY=from-file\nOVERPASS_RETRIES=4\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ORS_API_KEY")
		os.Unsetenv("OVERPASS_RETRIES")
	})
	t.Setenv("APP_ENV", "local")

	cfg := InitConfig(path)

	assert.Equal(t, "from-file", cfg.Routing.ORSAPIKey)
	assert.Equal(t, 4, cfg.Overlay.Retries)
}

func TestInitConfig_MissingFile(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	cfg := InitConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.Equal(t, "local", cfg.App.Environment)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("COMMUTE_TEST_FLAG", "yes")
	assert.True(t, GetEnvAsBool("COMMUTE_TEST_FLAG", true))
	t.Setenv("COMMUTE_TEST_FLAG", "0")
	assert.False(t, GetEnvAsBool("COMMUTE_TEST_FLAG", true))
}
