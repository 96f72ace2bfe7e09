package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// dirFlags holds the site directory flags of the build command.
type dirFlags struct {
	content string
	static  string
	output  string
}

// pageFlags holds flags that shape each converted page.
type pageFlags struct {
	theme       string
	template    string
	style       string
	basePath    string
	engine      string
	highlight   string
	noHighlight bool
	dateFormat  string
	minify      bool
	timeout     string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	dirs    dirFlags
	page    pageFlags
	workers int
	drafts  bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common commonFlags
	page   pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDirFlags adds site directory flags to a FlagSet.
func addDirFlags(fs *flag.FlagSet, f *dirFlags) {
	fs.StringVar(&f.content, "content", "", "Markdown pages directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (reset on every build)")
}

// addPageFlags adds page rendering flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.theme, "theme", "", "theme directory with styles/ and templates/")
	fs.StringVar(&f.template, "template", "", "template name or HTML file path")
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or \"none\"")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for root-relative links")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: dialect, commonmark")
	fs.StringVar(&f.highlight, "highlight", "", "highlight code with a chroma style")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code highlighting")
	fs.StringVar(&f.dateFormat, "date-format", "", "date format, e.g. DD/MM/YYYY or long")
	fs.BoolVar(&f.minify, "minify", false, "minify HTML and CSS")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page timeout (e.g. 10s)")
}

// newFlagSet creates a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w, printBuildUsage)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft")
	addCommonFlags(fs, &f.common)
	addDirFlags(fs, &f.dirs)
	addPageFlags(fs, &f.page)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
