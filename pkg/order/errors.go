package order

import "errors"

// ErrInvalidArgument is the root of every validation failure in this
// package; the specific errors below wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNegativeQuantity = wrap("quantity cannot be negative")
	ErrNilItem          = wrap("order item is nil")
	ErrNilCollection    = wrap("order item collection is nil")
	ErrDuplicateKey     = wrap("an item with the same part number already exists")
	ErrItemNotFound     = wrap("order item not found")
	ErrNilListener      = wrap("listener is nil")
)

type argError struct {
	msg string
}

func wrap(msg string) error {
	return &argError{msg: msg}
}

func (e *argError) Error() string { return e.msg }

func (e *argError) Unwrap() error { return ErrInvalidArgument }
