package players

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	dnderr "github.com/KirkDiggler/crawl-talents/internal/errors"
	"github.com/KirkDiggler/crawl-talents/internal/uuid"
)

// Data is the stored form of a player
type Data struct {
	Player    *player.Player `json:"player"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	ids          uuid.Generator
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	// TTL expires idle players; zero keeps them forever
	TTL time.Duration
}

// NewRedis creates a Redis-backed player repository
func NewRedis(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		ids:          cfg.UUIDGenerator,
		timeProvider: cfg.TimeProvider,
		ttl:          cfg.TTL,
	}
	if repo.ids == nil {
		repo.ids = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo
}

func playerKey(id string) string {
	return fmt.Sprintf("player:%s", id)
}

func ownerPlayersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:players", ownerID)
}

// Create stores a new player
func (r *redisRepo) Create(ctx context.Context, p *player.Player) error {
	if p == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}
	if p.OwnerID == "" {
		return dnderr.InvalidArgument("player owner ID is required")
	}
	if p.ID == "" {
		p.ID = r.ids.New()
	}

	exists, err := r.client.Exists(ctx, playerKey(p.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check player existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	now := r.timeProvider.Now()
	return r.set(ctx, &Data{Player: p, CreatedAt: now, UpdatedAt: now})
}

func (r *redisRepo) set(ctx context.Context, data *Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey(data.Player.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, ownerPlayersKey(data.Player.OwnerID), data.Player.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store player: %w", err)
	}
	return nil
}

// Get retrieves a player by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*player.Player, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Player, nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	jsonData, err := r.client.Get(ctx, playerKey(id)).Bytes()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}
	if data.Player == nil {
		return nil, dnderr.Internalf("player record '%s' is empty", id)
	}
	data.Player.Normalize()
	return &data, nil
}

// Update replaces an existing player, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, p *player.Player) error {
	if p == nil {
		return dnderr.InvalidArgument("player cannot be nil")
	}

	existing, err := r.getData(ctx, p.ID)
	if err != nil {
		return err
	}

	if existing.Player.OwnerID != p.OwnerID {
		if err := r.client.SRem(ctx, ownerPlayersKey(existing.Player.OwnerID), p.ID).Err(); err != nil {
			return fmt.Errorf("failed to update player owner index: %w", err)
		}
	}

	return r.set(ctx, &Data{Player: p, CreatedAt: existing.CreatedAt, UpdatedAt: r.timeProvider.Now()})
}

// Delete removes a player
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.SRem(ctx, ownerPlayersKey(p.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// ListByOwner retrieves every player belonging to an owner, sorted by name
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerPlayersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player IDs: %w", err)
	}

	result := make([]*player.Player, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := r.Get(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to get player %s: %w", id, err)
			}
			result[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
