package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

// memoryGame keeps games for the lifetime of the process. It stores copies,
// so callers never share a game with the store.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memoryGame) List(_ context.Context) ([]*entity.Game, error) {
	that.mu.RLock()
	games := make([]*entity.Game, 0, len(that.games))
	for _, game := range that.games {
		games = append(games, game.Clone())
	}
	that.mu.RUnlock()

	sortGames(games)

	return games, nil
}

func (that *memoryGame) Count(_ context.Context) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.games), nil
}
