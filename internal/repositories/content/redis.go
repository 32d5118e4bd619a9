package content

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/wrenhall/homebrew-api/internal/entities/homebrew"
	"github.com/wrenhall/homebrew-api/internal/errors"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	redisclient "github.com/wrenhall/homebrew-api/internal/redis"
)

const (
	contentKeyPrefix = "content:"
	typeIndexPrefix  = "content:type:"

	// Error messages
	errContentNil     = "content cannot be nil"
	errContentIDEmpty = "content ID cannot be empty"
	errTypeEmpty      = "content type cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis content repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed content repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Content == nil {
		return nil, errors.InvalidArgument(errContentNil)
	}
	if input.Content.ID == "" {
		return nil, errors.InvalidArgument(errContentIDEmpty)
	}
	if input.Content.Type == "" {
		return nil, errors.InvalidArgument(errTypeEmpty)
	}

	key := contentKeyPrefix + input.Content.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("content with ID %s already exists", input.Content.ID)
	}

	now := r.clock.Now().Unix()
	input.Content.CreatedAt = now
	input.Content.UpdatedAt = now

	data, err := json.Marshal(input.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal content")
	}

	// Record plus type index in one transaction
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, typeIndexPrefix+string(input.Content.Type), input.Content.ID)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create content")
	}

	return &CreateOutput{Content: input.Content}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errContentIDEmpty)
	}

	key := contentKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("content with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get content")
	}

	var record homebrew.ContentRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal content")
	}

	return &GetOutput{Content: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Content == nil {
		return nil, errors.InvalidArgument(errContentNil)
	}
	if input.Content.ID == "" {
		return nil, errors.InvalidArgument(errContentIDEmpty)
	}

	// Get the existing record to keep CreatedAt and fix the type index
	// if the type changed
	existing, err := r.Get(ctx, GetInput{ID: input.Content.ID})
	if err != nil {
		return nil, err
	}

	input.Content.CreatedAt = existing.Content.CreatedAt
	input.Content.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal content")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, contentKeyPrefix+input.Content.ID, data, 0)
	if existing.Content.Type != input.Content.Type {
		pipe.SRem(ctx, typeIndexPrefix+string(existing.Content.Type), input.Content.ID)
		pipe.SAdd(ctx, typeIndexPrefix+string(input.Content.Type), input.Content.ID)
	}
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update content")
	}

	return &UpdateOutput{Content: input.Content}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errContentIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, contentKeyPrefix+input.ID)
	pipe.SRem(ctx, typeIndexPrefix+string(getOutput.Content.Type), input.ID)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete content")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByType(ctx context.Context, input ListByTypeInput) (*ListByTypeOutput, error) {
	if input.Type == "" {
		return nil, errors.InvalidArgument(errTypeEmpty)
	}

	indexKey := typeIndexPrefix + string(input.Type)

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get content IDs from index %s", indexKey)
	}

	contents := make([]*homebrew.ContentRecord, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Stale index entry, clean it up
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "content not found, cleaning up index",
					"content_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get content %s", id)
		}
		contents = append(contents, getOutput.Content)
	}

	return &ListByTypeOutput{Contents: contents}, nil
}
