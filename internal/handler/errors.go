package handler

import (
	"errors"
	"net/http"

	"costr/internal/service"
	"costr/internal/theme"
	"costr/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSetupAlreadyComplete),
		errors.Is(err, service.ErrSlotCapacityExceeded),
		errors.Is(err, service.ErrCannotDeletePrimaryAdmin),
		errors.Is(err, service.ErrMinimumOneSlotRequired):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidSettings),
		errors.Is(err, service.ErrInvalidRecord),
		errors.Is(err, theme.ErrInvalidColorFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrSetupIncomplete):
		return http.StatusPreconditionRequired
	case errors.Is(err, service.ErrNotSaved):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.Error(status, err.Error()))
}

// respondBindError answers 422 for payloads that decoded but failed validation
// and 400 for anything that did not decode
func respondBindError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, response.Error(status, "Invalid request payload: "+err.Error()))
}
