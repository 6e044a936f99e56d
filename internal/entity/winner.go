package entity

import "fmt"

const (
	WinnerPlayer1 = "Player 1"
	WinnerPlayer2 = "Player 2"
	WinnerDraw    = "Draw"
)

// ResolveWinner decides the match from both round outcomes. When each side
// achieved its goal once, the round played in fewer moves wins for its
// player number, then the round with fewer four-in-a-rows, else a draw.
func ResolveWinner(victory [rounds]Side, moves, fours [rounds]int) string {
	if victory[0] == victory[1] {
		return fmt.Sprintf("Player %d", victory[0])
	}

	switch {
	case moves[0] < moves[1]:
		return WinnerPlayer1
	case moves[1] < moves[0]:
		return WinnerPlayer2
	case fours[0] < fours[1]:
		return WinnerPlayer1
	case fours[1] < fours[0]:
		return WinnerPlayer2
	default:
		return WinnerDraw
	}
}
