package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		flags, positional, err := parseBuildFlags(rest, env.Stderr)
		if err != nil {
			return flagError(err, env.Stderr, printBuildUsage)
		}
		setMaxProcs(flags.common.verbose, env.Stderr)
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return reportError(runBuild(ctx, positional, flags, env), env)

	case "render":
		flags, positional, err := parseRenderFlags(rest, env.Stderr)
		if err != nil {
			return flagError(err, env.Stderr, printRenderUsage)
		}
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return reportError(runRender(ctx, positional, flags, env), env)

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(rest, env)

	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// flagError reports a flag parsing error and maps it to an exit code.
// With ContinueOnError pflag prints only the help text, so other errors
// are written to w here, followed by the command usage.
func flagError(err error, w io.Writer, usage func(io.Writer)) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(w, "%v\n\n", err)
	usage(w)
	return ExitUsage
}

// reportError prints err, if any, and returns its exit code.
func reportError(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(verbose bool, w io.Writer) {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}
