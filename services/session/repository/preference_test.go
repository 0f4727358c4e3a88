package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/commutemap/internal/pkg/database"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T, ttlHours int) (*miniredis.Miniredis, *PreferenceRepo) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	repo := NewPreferenceRepo(client, models.RedisConfig{PreferenceTTL: ttlHours}).(*PreferenceRepo)
	return mr, repo
}

func testSnapshot() models.PreferenceSnapshot {
	toggles := models.DefaultOverlayToggles()
	toggles.AnalyzeGreen = true
	toggles.Themes = map[string]bool{"streets": true}

	return models.PreferenceSnapshot{
		Home: &models.LocationPoint{Lat: 52.2297, Lng: 21.0122, Label: "Home"},
		Frequent: []models.FrequentPoint{
			{ID: "f1", Point: models.LocationPoint{Lat: 52.1, Lng: 21.1, Label: "Gym"}},
		},
		Mode:              models.ModeBike,
		Toggles:           toggles,
		HighlightedThemes: []string{"streets"},
	}
}

func TestPreferenceRepo_SaveLoad(t *testing.T) {
	mr, repo := setupRepo(t, 0)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "default", testSnapshot()))
	assert.True(t, mr.Exists("commute:prefs:default"))
	assert.Equal(t, time.Duration(0), mr.TTL("commute:prefs:default"))

	got, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}

func TestPreferenceRepo_TTL(t *testing.T) {
	mr, repo := setupRepo(t, 24)

	require.NoError(t, repo.Save(context.Background(), "alice", testSnapshot()))
	assert.Equal(t, 24*time.Hour, mr.TTL("commute:prefs:alice"))

	mr.FastForward(25 * time.Hour)
	_, err := repo.Load(context.Background(), "alice")
	assert.ErrorIs(t, err, models.ErrPreferencesNotFound)
}

func TestPreferenceRepo_LoadMissing(t *testing.T) {
	_, repo := setupRepo(t, 0)

	_, err := repo.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrPreferencesNotFound)
}

func TestPreferenceRepo_LoadCorrupted(t *testing.T) {
	mr, repo := setupRepo(t, 0)
	require.NoError(t, mr.Set("commute:prefs:default", "{not json"))

	_, err := repo.Load(context.Background(), "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal preferences")
}

func TestPreferenceRepo_Delete(t *testing.T) {
	mr, repo := setupRepo(t, 0)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "default", testSnapshot()))
	require.NoError(t, repo.Delete(ctx, "default"))
	assert.False(t, mr.Exists("commute:prefs:default"))
}

func TestPreferenceRepo_ConnectionError(t *testing.T) {
	mr, repo := setupRepo(t, 0)
	mr.Close()

	err := repo.Save(context.Background(), "default", testSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store preferences")
}
