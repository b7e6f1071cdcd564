package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/cli"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/plugin"
	"github.com/strongspace/cli/internal/ui/style"
	"github.com/strongspace/cli/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stderr io.Writer) int {
	inv, err := cli.Parse(argv)
	if err != nil {
		return fail(stderr, err)
	}

	registry := cli.BuildRegistry()

	opts := app.DefaultOptions()
	opts.StyleEnabled = !inv.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	opts.PagerDisabled = inv.NoPager
	opts.PagerOverride = inv.Pager
	opts.APIURL = inv.APIURL
	opts.Reserved = registry.Has
	if inv.Verbose {
		opts.LogEnabled = true
		opts.LogLevel = log.LevelDebug
	}

	a, err := app.New(opts)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = a.Close() }()

	logger := a.Session.Logger
	dispatcher := command.NewDispatcher(registry,
		command.WithLoader(plugin.NewLoader(a.Catalog, registry, logger)),
		command.WithSession(a.Session),
		command.WithStderr(stderr),
		command.WithLogger(logger),
		command.WithTool(app.Tool),
	)

	logger.Debug("run %s %q", inv.Command, inv.Args)
	outcome := dispatcher.Run(ctx, inv.Command, inv.Args)
	if msg := outcome.Message(); msg != "" {
		fmt.Fprintln(stderr, style.Error(msg))
	}
	return outcome.ExitCode()
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, style.Error(err.Error()))
	if ue, ok := err.(*usage.Error); ok {
		return ue.GetExitCode()
	}
	return 1
}
