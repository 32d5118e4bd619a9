package rollsession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	redisclient "github.com/wrenhall/homebrew-api/internal/redis"
)

const (
	// Key pattern: roll_session:{entity_id}:{purpose}
	sessionKeyPrefix = "roll_session:"
	defaultTTL       = 15 * time.Minute

	// Error messages
	errSessionNil     = "session cannot be nil"
	errEntityIDEmpty  = "entity ID cannot be empty"
	errPurposeEmpty   = "purpose cannot be empty"
	errSessionExpired = "session has already expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new roll session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument(errPurposeEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := &RollSession{
		EntityID:  input.EntityID,
		Purpose:   input.Purpose,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.EntityID, input.Purpose)
	err = r.client.Set(ctx, key, sessionJSON, ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a roll session by entity ID and purpose
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument(errPurposeEmpty)
	}

	key := r.buildKey(input.EntityID, input.Purpose)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("roll session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session RollSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTL usually handles expiry; the clock check covers skew
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

// Delete removes a roll session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Purpose == "" {
		return nil, errors.InvalidArgument(errPurposeEmpty)
	}

	key := r.buildKey(input.EntityID, input.Purpose)

	// Get the session first to count rolls
	getOutput, err := r.Get(ctx, GetInput(input))

	var rollsDeleted int32
	if err == nil && getOutput.Session != nil {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(getOutput.Session.Rolls))
	}

	result := r.client.Del(ctx, key)
	if result.Err() != nil {
		return nil, errors.Wrapf(result.Err(), "failed to delete session from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// Update replaces an existing roll session (used for adding rolls)
func (r *redisRepository) Update(ctx context.Context, session *RollSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.EntityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if session.Purpose == "" {
		return errors.InvalidArgument(errPurposeEmpty)
	}

	now := r.clock.Now()
	if now.After(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	remainingTTL := session.ExpiresAt.Sub(now)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(session.EntityID, session.Purpose)
	err = r.client.Set(ctx, key, sessionJSON, remainingTTL).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to update session in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a roll session
func (r *redisRepository) buildKey(entityID, purpose string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, purpose)
}
