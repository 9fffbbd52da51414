package errs

import (
	"errors"
)

var (
	// ErrNotFound - entity absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict - duplicate pending request, already-returned loan,
	// repeated settlement.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable - no copies left.
	ErrUnavailable = errors.New("book is currently not available")
	// ErrInvalidState - action attempted outside the allowed state.
	ErrInvalidState = errors.New("invalid state")
	// ErrGateway - external payment/email dependency failure.
	ErrGateway = errors.New("payment gateway failure")
	// ErrValidation - malformed input.
	ErrValidation = errors.New("validation failed")
)
