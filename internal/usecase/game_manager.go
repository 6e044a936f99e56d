package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
	"github.com/rocketscienceinc/orderchaos-backend/internal/broadcast"
	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
	"github.com/rocketscienceinc/orderchaos-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Game, error)
	Count(ctx context.Context) (int, error)
}

type notifier interface {
	Publish(event broadcast.Event)
}

// GameManager is the registry of live games. Mutations of one game are
// serialized; different games never wait on each other.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	notifier notifier
	locks    *keyedMutex

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, notifier notifier) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		notifier: notifier,
		locks:    newKeyedMutex(),

		now:   time.Now,
		newID: pkg.GenerateGameID,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	gameID := that.newID()

	unlock := that.locks.Lock(gameID)
	defer unlock()

	_, err := that.gameRepo.GetByID(ctx, gameID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, gameID)
	case !errors.Is(err, apperror.ErrGameNotFound):
		return nil, fmt.Errorf("failed to check game id: %w", err)
	}

	game := entity.NewGame(gameID, that.now().UTC())
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.publish(broadcast.EventCreated, game)
	that.logger.Info("game created", "gameID", gameID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove applies one move to the game. On an invalid move the unchanged
// game is returned together with the error.
func (that *GameManager) MakeMove(ctx context.Context, gameID string, row, col int, mark entity.Cell) (*entity.Game, entity.Conclusion, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, entity.NoConclusion, fmt.Errorf("failed to get game: %w", err)
	}

	round := game.Round

	conclusion, err := game.ApplyMove(row, col, mark)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return game, entity.NoConclusion, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.NoConclusion, fmt.Errorf("failed to update game: %w", err)
	}

	switch {
	case game.GameOver:
		log.Info("game over", "conclusion", conclusion.String(), "winner", game.Winner)
		that.publish(broadcast.EventGameOver, game)
	case conclusion != entity.NoConclusion:
		log.Info("round concluded", "round", round, "conclusion", conclusion.String())
		that.publish(broadcast.EventRoundEnd, game)
	default:
		that.publish(broadcast.EventMove, game)
	}

	return game, conclusion, nil
}

func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.publish(broadcast.EventReset, game)
	that.logger.Info("game reset", "gameID", gameID)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	unlock := that.locks.Lock(gameID)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.notifier.Publish(broadcast.Event{Type: broadcast.EventDeleted, GameID: gameID})
	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

func (that *GameManager) ListGames(ctx context.Context) ([]entity.Summary, error) {
	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]entity.Summary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, game.Summary())
	}

	return summaries, nil
}

func (that *GameManager) CountGames(ctx context.Context) (int, error) {
	count, err := that.gameRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}

	return count, nil
}

func (that *GameManager) publish(eventType broadcast.EventType, game *entity.Game) {
	that.notifier.Publish(broadcast.Event{
		Type:   eventType,
		GameID: game.ID,
		Game:   game.Clone(),
	})
}
