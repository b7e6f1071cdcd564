package command

import (
	"context"
	"errors"
	"net/http"

	"github.com/strongspace/cli/internal/api"
	"github.com/strongspace/cli/internal/usage"
)

// Decision is what the dispatcher does with a classified failure.
type Decision int

const (
	// DecisionReport ends the run with Err shown to the user.
	DecisionReport Decision = iota
	// DecisionRetry asks the dispatcher to re-authenticate and try again.
	DecisionRetry
	// DecisionSuppress ends the run silently.
	DecisionSuppress
	// DecisionCancel ends the run as interrupted.
	DecisionCancel
)

func (d Decision) String() string {
	switch d {
	case DecisionRetry:
		return "retry"
	case DecisionSuppress:
		return "suppress"
	case DecisionCancel:
		return "cancel"
	default:
		return "report"
	}
}

// Classification is the result of Classify. Err is nil for DecisionSuppress.
type Classification struct {
	Decision Decision
	Err      *usage.Error
}

// Classify maps any failure from a handler attempt to a decision and the
// message to show. tool is the executable name used in hints.
func Classify(err error, tool string) Classification {
	if errors.Is(err, ErrInvalidCommand) {
		return report(usage.UnknownCommand(tool))
	}

	if apiErr, ok := api.AsError(err); ok {
		switch apiErr.Kind {
		case api.KindUnauthorized:
			return Classification{Decision: DecisionRetry, Err: usage.AuthFailure()}
		case api.KindNotFound:
			return report(usage.NotFound(ExtractNotFound(apiErr.Body)))
		case api.KindTimeout:
			return report(usage.Timeout())
		default:
			if apiErr.StatusCode == http.StatusPaymentRequired {
				return Classification{Decision: DecisionSuppress}
			}
			return report(usage.RequestFailed(ExtractError(apiErr.Body)))
		}
	}

	var usageErr *usage.Error
	if errors.As(err, &usageErr) {
		if usageErr.Kind == usage.ErrCanceled {
			return Classification{Decision: DecisionCancel, Err: usageErr}
		}
		return report(usageErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, ErrInterrupted) {
		return Classification{Decision: DecisionCancel, Err: usage.Canceled()}
	}

	return report(&usage.Error{Kind: usage.ErrUnknown, Message: err.Error()})
}

func report(err *usage.Error) Classification {
	return Classification{Decision: DecisionReport, Err: err}
}
