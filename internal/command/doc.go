// Package command resolves command strings such as "spaces:create" to
// handler types, runs them, and turns every failure into a single
// user-facing Outcome.
//
// A command string is one or more segments joined by ":". The last segment
// names the operation; the segments before it are namespaces walked from the
// registry root. A bare segment resolves to the type of that name with the
// "index" operation, or else to the fallback type with the segment as the
// operation name. Whether the fallback supports that operation is only known
// when the handler is constructed.
//
// Dispatcher.Run owns the retry policy: an authentication failure re-runs
// "auth:reauthorize" followed by the command, at most three times.
package command
