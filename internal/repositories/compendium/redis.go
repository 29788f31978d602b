package compendium

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/vtt-importer/internal/entities/vtt"
	"github.com/KirkDiggler/vtt-importer/internal/errors"
	redisclient "github.com/KirkDiggler/vtt-importer/internal/redis"
)

const compendiumKeyPrefix = "compendium:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis compendium repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed compendium repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// envelope wraps an entity with its type tag so the concrete
// structure can be restored on read
type envelope struct {
	Type   string          `json:"type"`
	Entity json.RawMessage `json:"entity"`
}

func redisKey(entityType string, sourceID int) string {
	return compendiumKeyPrefix + storeKey(entityType, sourceID)
}

func decodeEntity(data []byte) (vtt.Entity, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal entity envelope")
	}

	var entity vtt.Entity
	switch env.Type {
	case vtt.TypeSpell:
		entity = &vtt.Spell{}
	case vtt.TypeItem:
		entity = &vtt.Item{}
	case vtt.TypeClass:
		entity = &vtt.CharacterClass{}
	case vtt.TypeMonster:
		entity = &vtt.Monster{}
	default:
		return nil, errors.Internalf("unknown entity type %q in storage", env.Type)
	}

	if err := json.Unmarshal(env.Entity, entity); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s entity", env.Type)
	}
	return entity, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Entity == nil {
		return nil, errors.InvalidArgument("entity is required")
	}

	payload, err := json.Marshal(input.Entity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal entity")
	}
	data, err := json.Marshal(envelope{Type: input.Entity.GetType(), Entity: payload})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal entity envelope")
	}

	key := redisKey(input.Entity.GetType(), input.Entity.GetSourceID())

	existed, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check %s", key)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", key)
	}

	return &UpsertOutput{Created: existed == 0}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	key := redisKey(input.Type, input.SourceID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %d not found", input.Type, input.SourceID)
		}
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}

	entity, err := decodeEntity([]byte(result))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Entity: entity}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	pattern := compendiumKeyPrefix + input.Type + ":*"

	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", pattern)
	}

	entities := make([]vtt.Entity, 0, len(keys))
	for _, key := range keys {
		result, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get %s", key)
		}
		entity, err := decodeEntity([]byte(result))
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	sortEntities(entities)
	return &ListOutput{Entities: entities}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return nil, errors.InvalidArgument("entity type is required")
	}

	key := redisKey(input.Type, input.SourceID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", key)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("%s %d not found", input.Type, input.SourceID)
	}

	return &DeleteOutput{Success: true}, nil
}
