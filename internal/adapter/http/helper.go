package http

import (
	"errors"
	"net/http"
	"strings"

	"tokenvest-backend/internal/domain/fee"
	"tokenvest-backend/internal/domain/liquidity"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// writeDomainErr maps usecase errors to HTTP responses. Invalid transitions
// carry the current status so a stale admin view can reconcile.
func writeDomainErr(c echo.Context, err error) error {
	var ve *liquidity.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	}
	var ite *liquidity.InvalidTransitionError
	if errors.As(err, &ite) {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:         err.Error(),
			CurrentStatus: string(ite.Current),
		})
	}
	switch {
	case errors.Is(err, liquidity.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "request not found"})
	case errors.Is(err, liquidity.ErrConcurrentModification):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "request modified concurrently, retry"})
	case errors.Is(err, fee.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
