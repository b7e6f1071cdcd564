package cli

import (
	"errors"
	"io"

	"github.com/spf13/pflag"

	"github.com/strongspace/cli/internal/usage"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "help"

// Invocation is a parsed command line.
type Invocation struct {
	NoColor bool
	NoPager bool
	Pager   string
	APIURL  string
	Verbose bool

	Command string
	// Args are passed to the handler untouched, flags included.
	Args []string
}

// Parse reads the global flags up to the first non-flag argument, which
// is the command. Everything after the command is left to the handler.
func Parse(args []string) (Invocation, error) {
	var inv Invocation

	fs := pflag.NewFlagSet("strongspace", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.BoolVar(&inv.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&inv.NoPager, "no-pager", false, "Do not use a pager for output")
	fs.StringVar(&inv.Pager, "pager", "", "Use the given pager command")
	fs.StringVar(&inv.APIURL, "api-url", "", "Use a different API endpoint")
	fs.BoolVarP(&inv.Verbose, "verbose", "v", false, "Log debug output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			inv.Command = DefaultCommand
			return inv, nil
		}
		return Invocation{}, usage.FlagError(err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		inv.Command = DefaultCommand
		return inv, nil
	}
	inv.Command = rest[0]
	inv.Args = rest[1:]
	return inv, nil
}
