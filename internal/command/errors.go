package command

import "errors"

var (
	// ErrInvalidCommand is returned when a command string does not resolve
	// to a handler type, or the handler does not support the operation.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInterrupted is returned by handlers that notice a user interrupt
	// without a context, e.g. while reading from a prompt.
	ErrInterrupted = errors.New("interrupted")
)
