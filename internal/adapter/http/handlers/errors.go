package handlers

import (
	"errors"
	"net/http"

	request "waste_pickup/internal/adapter/http/dto/request"
	"waste_pickup/internal/usecase"
	"waste_pickup/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not permitted in current status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooLateToCancel):
		return pkg.NewDomainErrorSimple("TOO_LATE_TO_CANCEL", "Too late to cancel (<24h)", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlotUnavailable):
		return pkg.NewDomainErrorSimple("SLOT_UNAVAILABLE", "Slot unavailable", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Request was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, request.ErrInvalidTimestamp):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
