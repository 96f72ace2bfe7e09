package main

import (
	"context"
	"fmt"
	"io"
	"os"

	mdsite "github.com/alnah/go-mdsite"
)

// stdinArg reads the page from standard input.
const stdinArg = "-"

// runRender converts one page and writes it to stdout.
func runRender(ctx context.Context, args []string, flags *renderFlags, env *Environment) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("%w: render needs a FILE or %q for stdin", ErrNoInput, stdinArg)
	case len(args) > 1:
		return fmt.Errorf("%w: %q (render takes one file)", ErrUnexpectedArgs, args[1:])
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergePageFlags(&flags.page, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.page.timeout, envCfg)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, timeout, env.Now)
	if err != nil {
		return err
	}

	input, err := readInput(args[0], env.Stdin)
	if err != nil {
		return err
	}

	page, err := conv.Convert(ctx, input)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendered %q (%d bytes)\n", page.Title, len(page.HTML))
	}
	if _, err := env.Stdout.Write(page.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return nil
}

// readInput reads a page from path, or from stdin for "-".
func readInput(path string, stdin io.Reader) (mdsite.Input, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinArg {
		data, err = io.ReadAll(stdin)
		path = ""
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return mdsite.Input{}, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return mdsite.Input{Markdown: string(data), Name: path}, nil
}
