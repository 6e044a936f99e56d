package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
)

const rounds = 2

// Side is a role in a round. Order wants five in a row, Chaos wants a full board without one.
type Side int

const (
	NoSide Side = iota
	Order
	Chaos
)

// Opponent returns the other side.
func (that Side) Opponent() Side {
	if that == Order {
		return Chaos
	}
	return Order
}

// Conclusion tells what a move did to the current round.
type Conclusion int

const (
	NoConclusion Conclusion = iota
	FiveInRow
	FullBoard
)

func (that Conclusion) String() string {
	switch that {
	case FiveInRow:
		return "five_in_row"
	case FullBoard:
		return "full_board"
	default:
		return "none"
	}
}

type Phase string

const (
	PhaseRound1   Phase = "round1"
	PhaseRound2   Phase = "round2"
	PhaseGameOver Phase = "game_over"
)

// Game is the aggregate root of an Order and Chaos match.
type Game struct {
	ID            string       `json:"id"`
	Board         Board        `json:"board"`
	Round         int          `json:"round"`
	Moves         [rounds]int  `json:"moves"`
	Fours         [rounds]int  `json:"numberOf4"`
	Victory       [rounds]Side `json:"victory"`
	CurrentPlayer Side         `json:"currentPlayer"`
	GameOver      bool         `json:"gameOver"`
	Winner        string       `json:"winner"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Summary is the list view of a game, without the board.
type Summary struct {
	ID        string    `json:"id"`
	Round     int       `json:"round"`
	GameOver  bool      `json:"gameOver"`
	Winner    string    `json:"winner"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewGame(id string, createdAt time.Time) *Game {
	game := &Game{
		ID:        id,
		CreatedAt: createdAt,
	}
	game.Reset()

	return game
}

// Reset brings the game back to its creation-time state, keeping ID and CreatedAt.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Round = 1
	that.Moves = [rounds]int{}
	that.Fours = [rounds]int{}
	that.Victory = [rounds]Side{}
	that.CurrentPlayer = Order
	that.GameOver = false
	that.Winner = ""
}

// ApplyMove places mark at (row, col) for the side to move and advances the
// round or the game when the move concludes the round. A failed move leaves
// the game untouched.
func (that *Game) ApplyMove(row, col int, mark Cell) (Conclusion, error) {
	if that.GameOver {
		return NoConclusion, apperror.ErrGameOver
	}

	if !inBounds(row, col) {
		return NoConclusion, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidPosition, row, col)
	}

	if !mark.IsMark() {
		return NoConclusion, apperror.ErrInvalidMark
	}

	if that.Board[row][col] != EmptyCell {
		return NoConclusion, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.Board[row][col] = mark
	that.Moves[that.Round-1]++

	conclusion := that.checkRound()
	switch conclusion {
	case FiveInRow:
		// the mover completed Order's goal
		that.concludeRound(that.CurrentPlayer)
	case FullBoard:
		that.concludeRound(that.CurrentPlayer.Opponent())
	default:
		that.CurrentPlayer = that.CurrentPlayer.Opponent()
	}

	return conclusion, nil
}

func (that *Game) checkRound() Conclusion {
	if that.Board.HasFiveInRow() {
		return FiveInRow
	}

	if that.Board.IsFull() {
		return FullBoard
	}

	return NoConclusion
}

func (that *Game) concludeRound(achiever Side) {
	idx := that.Round - 1

	that.Fours[idx] += that.Board.CountFours()
	that.Victory[idx] = achiever

	if that.Round == 1 {
		that.Board = Board{}
		that.Round = 2
		that.CurrentPlayer = Order
		return
	}

	that.GameOver = true
	that.Winner = ResolveWinner(that.Victory, that.Moves, that.Fours)
}

func (that *Game) Phase() Phase {
	switch {
	case that.GameOver:
		return PhaseGameOver
	case that.Round == 2:
		return PhaseRound2
	default:
		return PhaseRound1
	}
}

func (that *Game) Summary() Summary {
	return Summary{
		ID:        that.ID,
		Round:     that.Round,
		GameOver:  that.GameOver,
		Winner:    that.Winner,
		CreatedAt: that.CreatedAt,
	}
}

// Clone returns a copy that shares no state with the receiver.
func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}
