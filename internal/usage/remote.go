package usage

const (
	authFailureMessage = "Authentication failure"
	timeoutMessage     = "API request timed out. Please try again, or contact support@strongspace.com if this issue persists."
	canceledMessage    = "[canceled]"
)

// AuthFailure is reported once the re-authentication budget is spent.
func AuthFailure() *Error {
	return &Error{Kind: ErrAuthFailure, Message: authFailureMessage}
}

// NotFound wraps an already-sanitised not-found message.
func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// RequestFailed wraps an already-formatted remote failure message.
func RequestFailed(message string) *Error {
	return &Error{Kind: ErrRequestFailed, Message: message}
}

// Timeout is reported when the API does not answer in time.
func Timeout() *Error {
	return &Error{Kind: ErrTimeout, Message: timeoutMessage}
}

// Canceled is reported when the user interrupts a command.
func Canceled() *Error {
	return &Error{Kind: ErrCanceled, Message: canceledMessage}
}
