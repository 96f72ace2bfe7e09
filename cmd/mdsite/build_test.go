package main

// Notes:
// - runBuild: end-to-end builds on temp directories with the real converter.
//   Not parallel where MDSITE_* variables are set.
// - Output pages are inspected with goquery.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

func parseFile(t *testing.T, path string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(readFile(t, path)))
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestRunBuild - Site builds
// ---------------------------------------------------------------------------

func TestRunBuild(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"content/index.md":       "# Home\n\nSee [the post](/blog/post.md).",
		"content/blog/post.md":   "---\ntitle: A Post\ndate: \"2024-01-02\"\n---\n\n## Section\n\n* one\n* two",
		"content/blog/draft.md":  "---\ndraft: true\n---\n# WIP",
		"static/css/site.css":    "body{}",
		"static/images/logo.png": "png",
		"public/stale.html":      "old",
	})
	flags := siteFlags(root)
	env, stdout, _ := newTestEnv()

	if err := runBuild(context.Background(), nil, flags, env); err != nil {
		t.Fatalf("runBuild() unexpected error: %v", err)
	}

	public := filepath.Join(root, "public")
	if _, err := os.Stat(filepath.Join(public, "stale.html")); !os.IsNotExist(err) {
		t.Error("output directory should be reset")
	}
	for _, static := range []string{"css/site.css", "images/logo.png"} {
		readFile(t, filepath.Join(public, filepath.FromSlash(static)))
	}
	if _, err := os.Stat(filepath.Join(public, "blog", "draft.html")); !os.IsNotExist(err) {
		t.Error("draft page should be skipped")
	}

	home := parseFile(t, filepath.Join(public, "index.html"))
	if got := home.Find("title").Text(); got != "Home" {
		t.Errorf("index title = %q, want %q", got, "Home")
	}
	if href, _ := home.Find("a").Attr("href"); href != "/blog/post.html" {
		t.Errorf("link href = %q, want %q", href, "/blog/post.html")
	}

	post := parseFile(t, filepath.Join(public, "blog", "post.html"))
	if got := post.Find("title").Text(); got != "A Post" {
		t.Errorf("post title = %q, want %q", got, "A Post")
	}
	if got := post.Find("ul li").Length(); got != 2 {
		t.Errorf("post list items = %d, want 2", got)
	}

	if !strings.Contains(stdout.String(), "Created "+filepath.Join(public, "index.html")) {
		t.Errorf("stdout = %q, want Created line", stdout)
	}
}

func TestRunBuild_BasePathAndMinify(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"content/index.md": "# Home\n\n![logo](/images/logo.png)",
		"static/.keep":     "",
	})
	flags := siteFlags(root)
	flags.page.basePath = "/site/"
	flags.page.minify = true
	flags.common.quiet = true
	env, stdout, _ := newTestEnv()

	if err := runBuild(context.Background(), nil, flags, env); err != nil {
		t.Fatalf("runBuild() unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build wrote %q", stdout)
	}

	html := readFile(t, filepath.Join(root, "public", "index.html"))
	if !strings.Contains(html, `src=/site/images/logo.png`) && !strings.Contains(html, `src="/site/images/logo.png"`) {
		t.Errorf("image src not prefixed: %s", html)
	}
	if !strings.Contains(html, "max-width:48rem") {
		t.Errorf("page style not minified: %s", html)
	}
}

func TestRunBuild_PageFailure(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"content/good.md": "# Good",
		"content/bad.md":  "# Bad\n\n```\nnever closed\n```oops",
		"static/.keep":    "",
	})
	env, _, stderr := newTestEnv()

	err := runBuild(context.Background(), nil, siteFlags(root), env)
	if !errors.Is(err, ErrPagesFailed) {
		t.Fatalf("runBuild() error = %v, want ErrPagesFailed", err)
	}
	if exitCodeFor(err) != ExitRender {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitRender)
	}
	readFile(t, filepath.Join(root, "public", "good.html"))
	if !strings.Contains(stderr.String(), "FAILED") {
		t.Errorf("stderr = %q, want FAILED line", stderr)
	}
}

func TestRunBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    map[string]string
		mutate   func(f *buildFlags, root string)
		args     []string
		wantErr  error
		wantHint string
	}{
		{
			name:    "positional args",
			files:   map[string]string{"static/.keep": "", "content/a.md": "a"},
			args:    []string{"content"},
			wantErr: ErrUnexpectedArgs,
		},
		{
			name:    "bad workers",
			files:   map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:  func(f *buildFlags, _ string) { f.workers = -1 },
			wantErr: ErrInvalidWorkerCount,
		},
		{
			name:     "missing static",
			files:    map[string]string{"content/a.md": "a"},
			wantErr:  ErrStaticDirNotFound,
			wantHint: "hint:",
		},
		{
			name:     "missing content",
			files:    map[string]string{"static/.keep": ""},
			wantErr:  ErrContentDirNotFound,
			wantHint: "hint:",
		},
		{
			name:    "bad engine",
			files:   map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:  func(f *buildFlags, _ string) { f.page.engine = "rst" },
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:     "unknown style",
			files:    map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:   func(f *buildFlags, _ string) { f.page.style = "fancy" },
			wantErr:  mdsite.ErrStyleNotFound,
			wantHint: "available: default",
		},
		{
			name:    "bad timeout",
			files:   map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:  func(f *buildFlags, _ string) { f.page.timeout = "soon" },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "output equals static",
			files:   map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:  func(f *buildFlags, _ string) { f.dirs.output = f.dirs.static },
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:     "missing config",
			files:    map[string]string{"static/.keep": "", "content/a.md": "a"},
			mutate:  func(f *buildFlags, root string) { f.common.config = filepath.Join(root, "nope.yaml") },
			wantErr: config.ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := setupTestDir(t, tt.files)
			flags := siteFlags(root)
			if tt.mutate != nil {
				tt.mutate(flags, root)
			}
			env, _, _ := newTestEnv()

			err := runBuild(context.Background(), tt.args, flags, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("runBuild() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantHint) {
				t.Errorf("error %q should contain %q", err, tt.wantHint)
			}
			if _, statErr := os.Stat(filepath.Join(root, "public")); !os.IsNotExist(statErr) {
				t.Error("output directory must not be created when the build cannot start")
			}
		})
	}
}

func TestRunBuild_ConfigFile(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"pages/index.md":            "# Home",
		"assets/site.css":           "body{}",
		"theme/templates/page.html": "<main data-theme>{{ Content }}</main>",
	})
	cfgPath := filepath.Join(root, "site.yaml")
	yaml := "content:\n  dir: " + filepath.Join(root, "pages") +
		"\nstatic:\n  dir: " + filepath.Join(root, "assets") +
		"\noutput:\n  dir: " + filepath.Join(root, "out") +
		"\ntheme:\n  dir: " + filepath.Join(root, "theme") +
		"\ntemplate:\n  name: page\n  style: none\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &buildFlags{common: commonFlags{config: cfgPath, quiet: true}}
	env, _, _ := newTestEnv()
	if err := runBuild(context.Background(), nil, flags, env); err != nil {
		t.Fatalf("runBuild() unexpected error: %v", err)
	}

	html := readFile(t, filepath.Join(root, "out", "index.html"))
	if !strings.HasPrefix(html, "<main data-theme>") {
		t.Errorf("theme template not used: %q", html)
	}
	readFile(t, filepath.Join(root, "out", "site.css"))
}
