package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site from the content and static directories")
	fmt.Fprintln(w, "  render     Convert one Markdown page to HTML on stdout")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printPageFlags prints the flags shared by build and render.
func printPageFlags(w io.Writer) {
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: dialect (default), commonmark")
	fmt.Fprintln(w, "      --base-path <s>       URL prefix for root-relative links (e.g. /blog/)")
	fmt.Fprintln(w, "      --date-format <s>     Format for {{ Date }}: tokens YYYY, YY, MMMM, MMM,")
	fmt.Fprintln(w, "                            MM, M, DD, D or presets iso, european, us, long")
	fmt.Fprintln(w, "      --highlight <style>   Highlight code with a chroma style (e.g. monokai)")
	fmt.Fprintln(w, "      --no-highlight        Disable code highlighting")
	fmt.Fprintln(w, "      --minify              Minify HTML and CSS")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-page timeout (e.g. 10s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --theme <dir>         Directory with styles/*.css and templates/*.html")
	fmt.Fprintln(w, "      --template <s>        Template name or HTML file path")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or \"none\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reset the output directory, copy the static directory into it, and")
	fmt.Fprintln(w, "convert every .md and .markdown file under the content directory to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown pages (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Files copied as-is (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Include pages with draft: true")
	fmt.Fprintln(w)
	printPageFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_THEME_DIR, MDSITE_BASE_PATH, MDSITE_STYLE, MDSITE_TIMEOUT, MDSITE_WORKERS")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite render [flags] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one Markdown page to a complete HTML page on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Markdown file, or - to read stdin")
	fmt.Fprintln(w)
	printPageFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
