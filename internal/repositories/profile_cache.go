package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/models"
)

// ProfileCacheRepository caches rendered public profiles in Redis, keyed
// by username.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(username string) string {
	return "profile:" + username
}

// Get returns the cached rendered profile, or nil on a cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, username string) (*models.ProfileView, error) {
	key := profileKey(username)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var view models.ProfileView
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Set caches a rendered profile with the configured TTL.
func (r *ProfileCacheRepository) Set(ctx context.Context, username string, view *models.ProfileView) error {
	key := profileKey(username)

	data, err := json.Marshal(view)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached profile for a username. Called on every
// profile or link mutation by the owner.
func (r *ProfileCacheRepository) Invalidate(ctx context.Context, username string) error {
	key := profileKey(username)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "del",
		"error", err,
	)

	return err
}
