package apperror

import (
	"errors"
	"fmt"
)

// Categories. Transport maps these to response codes.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrInvalidMove = errors.New("invalid move")
	ErrInternal    = errors.New("internal error")
)

var (
	ErrInvalidPosition = fmt.Errorf("%w: position is out of the board", ErrValidation)
	ErrInvalidMark     = fmt.Errorf("%w: symbol must be X or O", ErrValidation)

	ErrGameNotFound = fmt.Errorf("game %w", ErrNotFound)

	ErrGameOver     = fmt.Errorf("%w: game is already over", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)

	ErrGameAlreadyExists = errors.New("game already exists")
)
