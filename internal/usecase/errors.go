package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrInvalidState      = errors.New("operation not permitted in current status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTooLateToCancel   = errors.New("too late to cancel (<24h)")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrConcurrentUpdate  = errors.New("request modified concurrently")
	ErrValidation        = errors.New("validation error")
)

// Validation failures all wrap ErrValidation.
var (
	ErrInvalidRequestID   = fmt.Errorf("%w: invalid request id", ErrValidation)
	ErrInvalidUserID      = fmt.Errorf("%w: invalid user id", ErrValidation)
	ErrInvalidCategory    = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description is required", ErrValidation)
	ErrInvalidAddress     = fmt.Errorf("%w: address line1, city and pincode are required", ErrValidation)
	ErrInvalidSlot        = fmt.Errorf("%w: slot end must be after slot start", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPagination  = fmt.Errorf("%w: invalid pagination", ErrValidation)
	ErrInvalidNote        = fmt.Errorf("%w: note text is required", ErrValidation)
)
