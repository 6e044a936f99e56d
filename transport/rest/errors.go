package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/orderchaos-backend/internal/apperror"
)

const msgInternal = "internal server error"

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status of the error category. Internal details
// are logged, never returned.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		c.JSON(status, errorResponse{Error: msgInternal})
		return
	}

	c.JSON(status, errorResponse{Error: publicMessage(err)})
}

// publicMessage strips the wrapping context and keeps the sentinel text.
func publicMessage(err error) string {
	for _, sentinel := range []error{
		apperror.ErrInvalidPosition,
		apperror.ErrInvalidMark,
		apperror.ErrGameNotFound,
		apperror.ErrGameOver,
		apperror.ErrCellOccupied,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return err.Error()
}
