package usage

import "fmt"

// Failed is the domain-level failure a handler returns when a command
// cannot complete. The message is reported verbatim.
func Failed(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrCommandFailed,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidConfigKey is returned for keys missing from domain.ConfigKeys.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a valid config key", key),
	}
}

// NotLoggedIn is returned when a command needs credentials and none are stored.
func NotLoggedIn(tool string) *Error {
	return &Error{
		Kind:    ErrNotLoggedIn,
		Message: fmt.Sprintf("Not logged in. Run '%s auth:login' first.", tool),
	}
}
