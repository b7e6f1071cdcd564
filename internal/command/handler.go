package command

import (
	"context"
	"fmt"

	"github.com/strongspace/cli/internal/domain"
)

// Handler is a constructed handler type, ready to run one operation.
type Handler interface {
	// Supports reports whether op names an operation of this handler.
	Supports(op string) bool

	// Invoke runs op. It returns an *api.Error for remote failures, a
	// *usage.Error for domain failures, or a context error on interrupt.
	Invoke(ctx context.Context, op string) error
}

// Factory constructs a handler from the raw argument list and an optional
// session. Factories must not perform network I/O.
type Factory func(args []string, session *domain.Session) Handler

// Operations maps operation names to their implementation. Handler types
// embed it to get Supports and Invoke for free.
type Operations map[string]func(ctx context.Context) error

// Supports reports whether op is present.
func (o Operations) Supports(op string) bool {
	_, ok := o[op]
	return ok
}

// Invoke runs op, or fails with ErrInvalidCommand when it is absent.
func (o Operations) Invoke(ctx context.Context, op string) error {
	fn, ok := o[op]
	if !ok {
		return fmt.Errorf("%w: no operation %q", ErrInvalidCommand, op)
	}
	return fn(ctx)
}

// OperationInfo documents an operation for help output.
type OperationInfo struct {
	Name    string
	Usage   string
	Summary string
}
