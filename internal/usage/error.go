package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrNotLoggedIn
	ErrCommandFailed
	ErrAuthFailure
	ErrNotFound
	ErrRequestFailed
	ErrTimeout
	ErrCanceled
)

// Exit codes:
//
//	Exit 1: Environment/remote errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Command failed
//	  - Authentication failure
//	  - Resource not found
//	  - Request failed
//	  - Request timed out
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Not logged in
//
//	Exit 130: Interrupted by the user
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidConfigKey: 1,
	ErrNotLoggedIn:      2,
	ErrCommandFailed:    1,
	ErrAuthFailure:      1,
	ErrNotFound:         1,
	ErrRequestFailed:    1,
	ErrTimeout:          1,
	ErrCanceled:         130,
}

// Error represents a user-facing error with semantic type information.
// Handlers return it to fail a command with a message that is shown verbatim.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind's exit code when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
