package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/commutemap/internal/pkg/constants"
	"github.com/piresc/commutemap/internal/pkg/database"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/services/session"
)

// PreferenceRepo implements session.PreferenceRepo on redis
type PreferenceRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewPreferenceRepo creates a redis backed preference repository
func NewPreferenceRepo(redisClient *database.RedisClient, cfg models.RedisConfig) session.PreferenceRepo {
	return &PreferenceRepo{
		redisClient: redisClient,
		ttl:         time.Duration(cfg.PreferenceTTL) * time.Hour,
	}
}

// Save stores the snapshot as JSON
func (r *PreferenceRepo) Save(ctx context.Context, profile string, snapshot models.PreferenceSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	key := fmt.Sprintf(constants.KeyPreferences, profile)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}
	return nil
}

// Load returns the stored snapshot or models.ErrPreferencesNotFound
func (r *PreferenceRepo) Load(ctx context.Context, profile string) (models.PreferenceSnapshot, error) {
	key := fmt.Sprintf(constants.KeyPreferences, profile)

	data, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return models.PreferenceSnapshot{}, models.ErrPreferencesNotFound
	}
	if err != nil {
		return models.PreferenceSnapshot{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	var snapshot models.PreferenceSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return models.PreferenceSnapshot{}, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return snapshot, nil
}

// Delete removes the stored snapshot
func (r *PreferenceRepo) Delete(ctx context.Context, profile string) error {
	key := fmt.Sprintf(constants.KeyPreferences, profile)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}
