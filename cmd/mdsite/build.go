package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrUnexpectedArgs     = errors.New("unexpected arguments")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWritePage          = errors.New("failed to write page")
	ErrStaticDirNotFound  = errors.New("static directory not found")
	ErrContentDirNotFound = errors.New("content directory not found")
	ErrOutputDir          = errors.New("cannot prepare output directory")
	ErrPagesFailed        = errors.New("page build failed")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// runBuild orchestrates a site build:
//
//  1. load config, environment, and flags (CLI wins), then validate
//  2. check the static and content directories and discover pages
//  3. reset the output directory and copy the static tree into it
//  4. convert pages in parallel and write them under the output directory
//
// Nothing is removed before the converter and inputs are known to be valid.
func runBuild(ctx context.Context, args []string, flags *buildFlags, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q (build reads the content directory)", ErrUnexpectedArgs, args)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeDirFlags(&flags.dirs, cfg)
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

	if !fileutil.DirExists(cfg.Static.Dir) {
		return fmt.Errorf("%w: %s%s", ErrStaticDirNotFound, cfg.Static.Dir, hints.ForStaticDir(cfg.Static.Dir))
	}
	if !fileutil.DirExists(cfg.Content.Dir) {
		return fmt.Errorf("%w: %s%s", ErrContentDirNotFound, cfg.Content.Dir, hints.ForContentDir(cfg.Content.Dir))
	}
	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	if err := fileutil.ResetDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %w%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}
	copied, err := fileutil.CopyTree(cfg.Static.Dir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}

	workers := resolvePoolSize(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Copied %d static files from %s\n", copied, cfg.Static.Dir)
		fmt.Fprintf(env.Stderr, "Building %d pages with %d workers\n", len(pages), workers)
	}

	results := buildBatch(ctx, conv, pages, workers, flags.drafts)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d pages", ErrPagesFailed, failed, len(results))
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}
