// addrinfo inspects, canonicalizes and expands IP addresses.
//
// Usage:
//
//	addrinfo [global options] <command> [arguments]
//
// Commands:
//
//	classify [addr...]        report family, canonical form and classes
//	format [addr...]          re-render addresses or socket addresses
//	sort [addr...]            sort addresses in the core order (v4 first)
//	range <prefix|from-to>    expand a CIDR prefix or address range
//
// Addresses come from the arguments, or from stdin (one per line) when no
// arguments are given or the single argument is "-".
//
// Global options:
//
//	--json          one JSON object per address instead of text
//	-v, --verbose   debug logging on stderr
//
// Exit codes:
//
//	0: success
//	1: runtime failure (unparseable input, expansion over the limit)
//	2: usage error (bad arguments or flags)
//
// Examples:
//
//	addrinfo classify 192.0.2.1 2001:db8::1
//	addrinfo classify --summary-out /var/lib/metrics/addrinfo.prom < addrs.txt
//	addrinfo format "[::ffff:192.0.2.128]:443"
//	addrinfo sort < addrs.txt
//	addrinfo range 192.0.2.0/28
//	addrinfo range 2001:db8::1-2001:db8::8 --limit 16
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// defaultRangeLimit caps range expansion unless --limit raises it.
const defaultRangeLimit = 256

// Version information, injectable through -ldflags at build time.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:    "addrinfo",
		Usage:   "inspect, canonicalize and expand IP addresses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit one JSON object per address instead of text",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// Exit code mapping happens in run(); the framework must not call
		// os.Exit itself. ExitCoder errors still need their message printed
		// here because the default handler no longer runs.
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "usage error: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler cancels on the first signal and forces an exit on the
// second, so a blocked stdin read cannot trap the user.
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}

// newLogger builds the stderr logger for one command invocation. The default
// level keeps the tool quiet; --verbose opens it up to debug.
func newLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
