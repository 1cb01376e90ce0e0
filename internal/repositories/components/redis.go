package components

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const indexKey = "components:all"

// Data is the stored form of a component option
type Data struct {
	Option    spell.ComponentOption `json:"option"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = systemTime{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// NewRedis creates a new Redis-backed component repository using the system clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func optionKey(key spell.ComponentKey) string {
	return fmt.Sprintf("component:%s", key)
}

func (r *redisRepo) Put(ctx context.Context, option *spell.ComponentOption) error {
	if option == nil {
		return spellerr.InvalidArgument("component option cannot be nil")
	}
	if err := option.Check(); err != nil {
		return err
	}

	jsonData, err := json.Marshal(Data{
		Option:    *option,
		UpdatedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return spellerr.Wrapf(err, "failed to marshal component %s", option.Key)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, optionKey(option.Key), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, string(option.Key))
	if _, err := pipe.Exec(ctx); err != nil {
		return spellerr.Wrapf(err, "failed to store component %s in Redis", option.Key)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, key spell.ComponentKey) (*spell.ComponentOption, error) {
	if key == "" {
		return nil, spellerr.InvalidArgument("component key is required")
	}

	jsonData, err := r.client.Get(ctx, optionKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, spellerr.NotFoundf("component %s not found", key).WithComponent(key.String())
		}
		return nil, spellerr.Wrapf(err, "failed to get component %s from Redis", key)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, spellerr.WrapWithCode(err, spellerr.CodeInternal, "failed to unmarshal component data").
			WithComponent(key.String())
	}

	return &data.Option, nil
}

func (r *redisRepo) List(ctx context.Context) ([]*spell.ComponentOption, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, spellerr.Wrap(err, "failed to list components from Redis")
	}
	sort.Strings(keys)

	options := make([]*spell.ComponentOption, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			option, err := r.Get(gctx, spell.ComponentKey(key))
			if err != nil {
				return err
			}
			options[i] = option
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return options, nil
}

func (r *redisRepo) Delete(ctx context.Context, key spell.ComponentKey) error {
	if _, err := r.Get(ctx, key); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, optionKey(key))
	pipe.SRem(ctx, indexKey, string(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return spellerr.Wrapf(err, "failed to delete component %s from Redis", key)
	}

	return nil
}
