package main

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"content/index.md":            "# Home",
		"content/blog/first.markdown": "# First",
		"content/blog/img.png":        "png",
		"content/notes/UPPER.MD":      "# Upper",
		"content/.drafts/secret.md":   "# Hidden dir",
		"content/.hidden.md":          "# Hidden file",
		"content/blog/deep/nested.md": "# Nested",
		"content/readme.txt":          "not markdown",
	})
	content := filepath.Join(root, "content")
	out := filepath.Join(root, "public")

	pages, err := discoverPages(content, out)
	if err != nil {
		t.Fatalf("discoverPages() unexpected error: %v", err)
	}

	want := []PageToBuild{
		{
			InputPath:  filepath.Join(content, "blog", "deep", "nested.md"),
			OutputPath: filepath.Join(out, "blog", "deep", "nested.html"),
			Name:       "blog/deep/nested.md",
		},
		{
			InputPath:  filepath.Join(content, "blog", "first.markdown"),
			OutputPath: filepath.Join(out, "blog", "first.html"),
			Name:       "blog/first.markdown",
		},
		{
			InputPath:  filepath.Join(content, "index.md"),
			OutputPath: filepath.Join(out, "index.html"),
			Name:       "index.md",
		},
		{
			InputPath:  filepath.Join(content, "notes", "UPPER.MD"),
			OutputPath: filepath.Join(out, "notes", "UPPER.html"),
			Name:       "notes/UPPER.MD",
		},
	}
	if diff := cmp.Diff(want, pages); diff != "" {
		t.Errorf("discoverPages() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverPages_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pages, err := discoverPages(dir, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("discoverPages() unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("discoverPages() = %v, want none", pages)
	}
}

func TestDiscoverPages_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := discoverPages(filepath.Join(t.TempDir(), "nope"), "out"); err == nil {
		t.Error("discoverPages() on a missing directory should fail")
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  string
		want string
	}{
		{rel: "index.md", want: filepath.Join("public", "index.html")},
		{rel: filepath.Join("a", "b.md"), want: filepath.Join("public", "a", "b.html")},
		{rel: "post.v2.markdown", want: filepath.Join("public", "post.v2.html")},
	}

	for _, tt := range tests {
		if got := resolveOutputPath(tt.rel, "public"); got != tt.want {
			t.Errorf("resolveOutputPath(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}
