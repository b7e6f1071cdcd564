package usage

import "fmt"

// UnknownCommand is reported when a command string does not resolve to a handler.
func UnknownCommand(tool string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("Unknown command. Run '%s help' for usage information.", tool),
	}
}
