package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	gamesIndexKey = "games"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Game, error)
	Count(ctx context.Context) (int, error)
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games in Redis. A zero ttl keeps games until they are deleted.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, that.ttl)
		pipe.SAdd(ctx, gamesIndexKey, game.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, gameKey(id))
		pipe.SRem(ctx, gamesIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted.Val() == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// List - returns all stored games, oldest first. Index entries whose game
// expired are dropped on the way.
func (that *dbGame) List(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, gamesIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Game{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*entity.Game, 0, len(values))
	stale := make([]any, 0)

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", ids[i], err)
		}

		games = append(games, &game)
	}

	if len(stale) > 0 {
		if err = that.client.SRem(ctx, gamesIndexKey, stale...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune game index: %w", err)
		}
	}

	sortGames(games)

	return games, nil
}

func (that *dbGame) Count(ctx context.Context) (int, error) {
	games, err := that.List(ctx)
	if err != nil {
		return 0, err
	}

	return len(games), nil
}

func sortGames(games []*entity.Game) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
}
