package rest

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/orderchaos-backend/internal/broadcast"
	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

const paramGameID = "gameId"

type gameHandlers struct {
	logger *slog.Logger
	games  gameUseCase
	events eventSource
	now    func() time.Time
}

func newGameHandlers(logger *slog.Logger, games gameUseCase, events eventSource) *gameHandlers {
	return &gameHandlers{
		logger: logger,
		games:  games,
		events: events,
		now:    time.Now,
	}
}

func (that *gameHandlers) Create(c *gin.Context) {
	log := that.logger.With("method", "Create")

	game, err := that.games.CreateGame(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{
		Success: true,
		GameID:  game.ID,
		Game:    newGameState(game),
	})
}

func (that *gameHandlers) List(c *gin.Context) {
	log := that.logger.With("method", "List")

	games, err := that.games.ListGames(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Success: true, Games: games})
}

func (that *gameHandlers) Get(c *gin.Context) {
	log := that.logger.With("method", "Get")

	game, err := that.games.GetGame(c.Request.Context(), c.Param(paramGameID))
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{Success: true, Game: newGameState(game)})
}

func (that *gameHandlers) Move(c *gin.Context) {
	log := that.logger.With("method", "Move", "gameID", c.Param(paramGameID))

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := fieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid move request", Fields: fields})
			return
		}

		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	mark, err := entity.ParseMark(req.Symbol)
	if err != nil {
		writeError(c, log, err)
		return
	}

	game, conclusion, err := that.games.MakeMove(c.Request.Context(), c.Param(paramGameID), *req.Row, *req.Col, mark)
	if err != nil {
		status := errorStatus(err)
		if game == nil || status == http.StatusInternalServerError {
			writeError(c, log, err)
			return
		}

		state := newGameState(game)
		c.JSON(status, errorResponse{Error: publicMessage(err), Game: &state})
		return
	}

	c.JSON(http.StatusOK, moveResponse{
		Success:    true,
		Conclusion: conclusion.String(),
		gameState:  newGameState(game),
	})
}

func (that *gameHandlers) Reset(c *gin.Context) {
	log := that.logger.With("method", "Reset")

	game, err := that.games.ResetGame(c.Request.Context(), c.Param(paramGameID))
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse{Success: true, Game: newGameState(game)})
}

func (that *gameHandlers) Delete(c *gin.Context) {
	log := that.logger.With("method", "Delete")

	if err := that.games.DeleteGame(c.Request.Context(), c.Param(paramGameID)); err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Success: true, Message: "game deleted"})
}

func (that *gameHandlers) Health(c *gin.Context) {
	log := that.logger.With("method", "Health")

	count, err := that.games.CountGames(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, healthResponse{
		Success:     true,
		Message:     "Order and Chaos server is running",
		Timestamp:   that.now().UTC(),
		ActiveGames: count,
	})
}

// Events streams state changes of one game as server-sent events. The first
// event is the current state; the stream ends when the game is deleted.
func (that *gameHandlers) Events(c *gin.Context) {
	gameID := c.Param(paramGameID)
	log := that.logger.With("method", "Events", "gameID", gameID)
	ctx := c.Request.Context()

	sub, cancel := that.events.Subscribe(gameID)
	defer cancel()

	game, err := that.games.GetGame(ctx, gameID)
	if err != nil {
		writeError(c, log, err)
		return
	}

	// the stream outlives the server write timeout
	if err = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		log.Debug("write deadline not cleared", "error", err)
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("state", newGameState(game))
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-sub.Events():
			if !ok {
				return false
			}

			if event.Type == broadcast.EventDeleted {
				c.SSEvent(string(event.Type), gin.H{"gameId": event.GameID})
				return false
			}

			c.SSEvent(string(event.Type), newGameState(event.Game))
			return true
		}
	})
}
