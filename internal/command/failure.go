package command

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	resourceNotFound    = "Resource not found"
	internalServerError = "Internal server error"
	failurePrefix       = " !   "
)

// notFoundBody matches plain-text bodies such as "Space backups not found".
var notFoundBody = regexp.MustCompile(`^[\w\s]+ not found$`)

// ExtractNotFound returns body when it is a short plain-text not-found
// message, and a generic message otherwise.
func ExtractNotFound(body string) string {
	if notFoundBody.MatchString(body) {
		return body
	}
	return resourceNotFound
}

// ExtractError pulls the "status" field from a JSON error body and formats
// it for display.
func ExtractError(body string) string {
	msg := internalServerError
	if gjson.Valid(body) {
		if status := gjson.Get(body, "status"); status.Type == gjson.String && status.Str != "" {
			msg = status.Str
		}
	}
	return FormatFailure(msg)
}

// FormatFailure prefixes every line of msg with " !   ". Trailing empty
// lines are dropped.
func FormatFailure(msg string) string {
	lines := strings.Split(msg, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = failurePrefix + line
	}
	return strings.Join(lines, "\n")
}
