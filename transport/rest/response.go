package rest

import (
	"time"

	"github.com/rocketscienceinc/orderchaos-backend/internal/entity"
)

type gameState struct {
	ID            string                                     `json:"id"`
	Board         [entity.BoardSize][entity.BoardSize]string `json:"board"`
	Round         int                                        `json:"round"`
	Phase         entity.Phase                               `json:"phase"`
	Moves         [2]int                                     `json:"moves"`
	NumberOf4     [2]int                                     `json:"numberOf4"`
	Victory       [2]entity.Side                             `json:"victory"`
	CurrentPlayer entity.Side                                `json:"currentPlayer"`
	GameOver      bool                                       `json:"gameOver"`
	Winner        *string                                    `json:"winner"`
	CreatedAt     time.Time                                  `json:"createdAt"`
}

func newGameState(game *entity.Game) gameState {
	state := gameState{
		ID:            game.ID,
		Board:         game.Board.Rows(),
		Round:         game.Round,
		Phase:         game.Phase(),
		Moves:         game.Moves,
		NumberOf4:     game.Fours,
		Victory:       game.Victory,
		CurrentPlayer: game.CurrentPlayer,
		GameOver:      game.GameOver,
		CreatedAt:     game.CreatedAt,
	}

	if game.GameOver {
		winner := game.Winner
		state.Winner = &winner
	}

	return state
}

type errorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Game    *gameState        `json:"game,omitempty"`
}

type createResponse struct {
	Success bool      `json:"success"`
	GameID  string    `json:"gameId"`
	Game    gameState `json:"game"`
}

type gameResponse struct {
	Success bool      `json:"success"`
	Game    gameState `json:"game"`
}

type listResponse struct {
	Success bool             `json:"success"`
	Games   []entity.Summary `json:"games"`
}

// moveResponse flattens the game state next to the success flag.
type moveResponse struct {
	Success    bool   `json:"success"`
	Conclusion string `json:"conclusion"`
	gameState
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type healthResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	ActiveGames int       `json:"activeGames"`
}
