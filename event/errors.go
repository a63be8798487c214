package event

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/sipevent/internal/errorutil"

// Error represents an event error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidState is returned when an operation is not allowed in the current subscription state.
	ErrInvalidState Error = "invalid state"
	// ErrInvalidDirection is returned when an operation is not allowed for the event direction.
	ErrInvalidDirection Error = "invalid direction"
	// ErrTransportFailure wraps errors returned by the underlying signaling operation.
	ErrTransportFailure Error = "transport failure"
	// ErrEventReleased is returned when the event was terminated or destroyed.
	ErrEventReleased Error = "event released"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// NewInvalidStateError creates a new error with [ErrInvalidState] or
// wraps provided error with [ErrInvalidState].
func NewInvalidStateError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidState, args...) //errtrace:skip
}

// NewInvalidDirectionError creates a new error with [ErrInvalidDirection] or
// wraps provided error with [ErrInvalidDirection].
func NewInvalidDirectionError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidDirection, args...) //errtrace:skip
}

// NewTransportError wraps an error of the signaling operation with [ErrTransportFailure].
// The original error stays reachable with [errors.Is] and [errors.As].
func NewTransportError(err error) error {
	if err == nil {
		return nil
	}
	return errorutil.NewWrapperError(ErrTransportFailure, err) //errtrace:skip
}
