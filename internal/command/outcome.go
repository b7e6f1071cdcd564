package command

import "github.com/strongspace/cli/internal/usage"

// OutcomeKind is the terminal state of a dispatch.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeReportedError
	OutcomeSuppressed
	OutcomeCanceled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeReportedError:
		return "error"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "success"
	}
}

// Outcome is the single result of Dispatcher.Run.
type Outcome struct {
	Kind OutcomeKind
	// Err carries the message for ReportedError and Canceled.
	Err *usage.Error
	// Attempts counts handler attempts, including the first.
	Attempts int
}

// Message returns the text to show the user, or "".
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Message
}

// ExitCode returns the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case OutcomeSuccess, OutcomeSuppressed:
		return 0
	case OutcomeCanceled:
		return usage.Canceled().GetExitCode()
	}
	if o.Err == nil {
		return 1
	}
	return o.Err.GetExitCode()
}
