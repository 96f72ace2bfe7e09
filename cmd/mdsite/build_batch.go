package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// PageConverter is the interface for the page conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// BuildResult holds the outcome of a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft page left out of the build
	Err        error
	Duration   time.Duration
}

// buildBatch converts pages with a bounded number of workers sharing conv.
// Results keep the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageToBuild, workers int, drafts bool) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(workers, len(pages))
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]BuildResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = BuildResult{InputPath: pages[idx].InputPath, Err: err}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx], drafts)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts and writes a single page.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild, drafts bool) BuildResult {
	start := time.Now()
	result := BuildResult{InputPath: p.InputPath, OutputPath: p.OutputPath}
	done := func(err error) BuildResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	page, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content), Name: p.Name})
	if err != nil {
		return done(err)
	}
	if page.Draft && !drafts {
		result.Skipped = true
		return done(nil)
	}

	if err := fileutil.WriteFile(p.OutputPath, page.HTML); err != nil {
		return done(fmt.Errorf("%w: %v", ErrWritePage, err))
	}
	return done(nil)
}

// ResultSummary holds the count of built, skipped, and failed pages.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies build results.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs build results and returns the failure count.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped && verbose:
			fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
		case r.Skipped:
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, ", %d drafts skipped", summary.Skipped)
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary.Failed
}

// hintFor returns a hint for page errors caused by malformed Markdown.
func hintFor(err error) string {
	if errors.Is(err, mdsite.ErrInvalidHeadingBlock) ||
		errors.Is(err, mdsite.ErrInvalidCodeBlock) ||
		errors.Is(err, mdsite.ErrInvalidQuoteBlock) {
		return hints.ForMarkdownBlock()
	}
	return ""
}
