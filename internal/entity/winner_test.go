package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWinner(t *testing.T) {
	tests := []struct {
		name    string
		victory [2]Side
		moves   [2]int
		fours   [2]int
		want    string
	}{
		{
			name:    "same side both rounds, Player 1",
			victory: [2]Side{Order, Order},
			moves:   [2]int{30, 5},
			fours:   [2]int{9, 0},
			want:    WinnerPlayer1,
		},
		{
			name:    "same side both rounds, Player 2",
			victory: [2]Side{Chaos, Chaos},
			moves:   [2]int{6, 36},
			fours:   [2]int{0, 4},
			want:    WinnerPlayer2,
		},
		{
			name:    "fewer moves in round 1",
			victory: [2]Side{Order, Chaos},
			moves:   [2]int{10, 12},
			want:    WinnerPlayer1,
		},
		{
			name:    "fewer moves in round 2",
			victory: [2]Side{Chaos, Order},
			moves:   [2]int{12, 10},
			fours:   [2]int{0, 5},
			want:    WinnerPlayer2,
		},
		{
			name:    "equal moves, fewer fours in round 1",
			victory: [2]Side{Order, Chaos},
			moves:   [2]int{36, 36},
			fours:   [2]int{1, 3},
			want:    WinnerPlayer1,
		},
		{
			name:    "equal moves, fewer fours in round 2",
			victory: [2]Side{Chaos, Order},
			moves:   [2]int{36, 36},
			fours:   [2]int{3, 1},
			want:    WinnerPlayer2,
		},
		{
			name:    "everything equal is a draw",
			victory: [2]Side{Order, Chaos},
			moves:   [2]int{36, 36},
			fours:   [2]int{2, 2},
			want:    WinnerDraw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWinner(tt.victory, tt.moves, tt.fours))
		})
	}
}
