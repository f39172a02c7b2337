package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/models"
)

// overrideKey builds the per-user storage key. Overrides used to live under
// one key shared by every account on a device; keying by user ID closes that
// cross-account leak.
func overrideKey(userID string) string {
	return fmt.Sprintf("calendar:overrides:%s", userID)
}

// redisOverrideRepository implements OverrideRepository on Redis. The whole
// override map is stored as one JSON value per user.
type redisOverrideRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisOverrideRepository creates a new Redis-backed override repository.
func NewRedisOverrideRepository(client *redis.Client, logger *zap.Logger) OverrideRepository {
	if client == nil {
		panic("Redis client is not initialized for OverrideRepository")
	}
	return &redisOverrideRepository{client: client, logger: logger}
}

// Get loads the user's override map. A missing key reads as an empty map. A
// corrupt stored value also reads as an empty map: the next save rewrites the
// key with valid JSON, so corruption never wedges the calendar.
func (r *redisOverrideRepository) Get(ctx context.Context, userID string) (map[string]models.CalendarSuggestion, error) {
	raw, err := r.client.Get(ctx, overrideKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]models.CalendarSuggestion{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar overrides for user '%s': %w", userID, err)
	}

	var overrides map[string]models.CalendarSuggestion
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		if r.logger != nil {
			r.logger.Warn("Stored calendar overrides are corrupt, treating as empty",
				zap.String("userID", userID), zap.Error(err))
		}
		return map[string]models.CalendarSuggestion{}, nil
	}
	if overrides == nil {
		overrides = map[string]models.CalendarSuggestion{}
	}
	return overrides, nil
}

// Set writes the full override map back. Overrides have no expiry; they hold
// user-authored edits.
func (r *redisOverrideRepository) Set(ctx context.Context, userID string, overrides map[string]models.CalendarSuggestion) error {
	if overrides == nil {
		overrides = map[string]models.CalendarSuggestion{}
	}
	payload, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to serialize calendar overrides for user '%s': %w", userID, err)
	}
	if err := r.client.Set(ctx, overrideKey(userID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write calendar overrides for user '%s': %w", userID, err)
	}
	return nil
}
