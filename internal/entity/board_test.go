package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
)

func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()

	var board Board
	for i, row := range rows {
		for j, symbol := range row {
			require.NoError(t, board[i][j].UnmarshalText([]byte(string(symbol))))
		}
	}

	return board
}

func TestBoard_CountFours(t *testing.T) {
	t.Run("Run of exactly four counts once", func(t *testing.T) {
		board := boardFrom(t, "XXXX  ")

		assert.Equal(t, 1, board.CountFours())
	})

	t.Run("Run of exactly five counts twice", func(t *testing.T) {
		board := boardFrom(t, " OOOOO")

		assert.Equal(t, 2, board.CountFours())
	})

	t.Run("Run of six counts three times", func(t *testing.T) {
		board := boardFrom(t,
			"X     ",
			"X     ",
			"X     ",
			"X     ",
			"X     ",
			"X     ",
		)

		assert.Equal(t, 3, board.CountFours())
	})

	t.Run("Diagonal and anti-diagonal runs count", func(t *testing.T) {
		board := boardFrom(t,
			"X    O",
			" X  O ",
			"  XO  ",
			"  OX  ",
			"      ",
			"      ",
		)

		assert.Equal(t, 2, board.CountFours())
	})

	t.Run("Mixed marks do not count", func(t *testing.T) {
		board := boardFrom(t, "XXOXX ")

		assert.Equal(t, 0, board.CountFours())
	})
}

func TestBoard_HasFiveInRow(t *testing.T) {
	t.Run("Four is not enough", func(t *testing.T) {
		board := boardFrom(t, "XXXXO ")

		assert.False(t, board.HasFiveInRow())
	})

	t.Run("Five up-right from the bottom row", func(t *testing.T) {
		board := boardFrom(t,
			"      ",
			"     O",
			"    O ",
			"   O  ",
			"  O   ",
			" O    ",
		)

		assert.True(t, board.HasFiveInRow())
	})

	t.Run("Full board without a line", func(t *testing.T) {
		board := boardFrom(t, fullBoardNoFive...)

		assert.False(t, board.HasFiveInRow())
		assert.True(t, board.IsFull())
	})
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("X")
	require.NoError(t, err)
	assert.Equal(t, MarkX, mark)

	mark, err = ParseMark("O")
	require.NoError(t, err)
	assert.Equal(t, MarkO, mark)

	for _, symbol := range []string{"", " ", "x", "o", "XO", "0"} {
		_, err = ParseMark(symbol)
		assert.ErrorIs(t, err, apperror.ErrInvalidMark, symbol)
	}
}
