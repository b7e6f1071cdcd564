package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("invalid flag '%s'", flag),
	}
}

// FlagError wraps a flag parsing failure, keeping the parser's message.
func FlagError(err error) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: err.Error(),
	}
}
