package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: apperror.ErrInvalidPosition, want: http.StatusBadRequest},
		{err: apperror.ErrInvalidMark, want: http.StatusBadRequest},
		{err: fmt.Errorf("failed to get game: %w", apperror.ErrGameNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("failed to make move: %w", apperror.ErrCellOccupied), want: http.StatusConflict},
		{err: apperror.ErrGameOver, want: http.StatusConflict},
		{err: errors.New("redis down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	err := fmt.Errorf("failed to make move: %w", apperror.ErrCellOccupied)

	assert.Equal(t, apperror.ErrCellOccupied.Error(), publicMessage(err))
}
