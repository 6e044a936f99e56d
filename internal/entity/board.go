package entity

import (
	"fmt"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
)

const (
	BoardSize = 6

	winLength  = 5
	fourLength = 4
)

// Cell is the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

const (
	SymbolX     = "X"
	SymbolO     = "O"
	SymbolEmpty = " "
)

// directions scanned for lines: right, down, down-right, up-right.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// ParseMark converts a wire symbol into a placeable mark.
func ParseMark(symbol string) (Cell, error) {
	switch symbol {
	case SymbolX:
		return MarkX, nil
	case SymbolO:
		return MarkO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, symbol)
	}
}

func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}

func (that Cell) String() string {
	switch that {
	case MarkX:
		return SymbolX
	case MarkO:
		return SymbolO
	default:
		return SymbolEmpty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	if string(text) == SymbolEmpty || len(text) == 0 {
		*that = EmptyCell
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// Board is the 6x6 playing grid, indexed [row][col].
type Board [BoardSize][BoardSize]Cell

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// HasFiveInRow reports whether any cell starts five equal marks in one direction.
func (that *Board) HasFiveInRow() bool {
	for i := range BoardSize {
		for j := range BoardSize {
			if that[i][j] == EmptyCell {
				continue
			}

			for _, dir := range directions {
				if that.runLength(i, j, dir, winLength) == winLength {
					return true
				}
			}
		}
	}

	return false
}

// CountFours counts every 4-cell window of one mark. Overlapping windows count
// separately, so a straight run of five yields two.
func (that *Board) CountFours() int {
	count := 0

	for i := range BoardSize {
		for j := range BoardSize {
			if that[i][j] == EmptyCell {
				continue
			}

			for _, dir := range directions {
				if that.runLength(i, j, dir, fourLength) == fourLength {
					count++
				}
			}
		}
	}

	return count
}

// runLength walks from (row, col) along dir and returns how many consecutive
// cells match the starting mark, capped at limit.
func (that *Board) runLength(row, col int, dir [2]int, limit int) int {
	mark := that[row][col]

	n := 0
	for k := range limit {
		r, c := row+k*dir[0], col+k*dir[1]
		if !inBounds(r, c) || that[r][c] != mark {
			break
		}
		n++
	}

	return n
}

// Rows renders the board in its wire form.
func (that *Board) Rows() [BoardSize][BoardSize]string {
	var rows [BoardSize][BoardSize]string
	for i, row := range that {
		for j, cell := range row {
			rows[i][j] = cell.String()
		}
	}

	return rows
}
