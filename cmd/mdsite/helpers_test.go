package main

// Notes:
// - Test infrastructure shared by the command tests: an in-memory
//   Environment, a temp site builder, and a recording mock converter.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
)

// fixedNow is the clock of test environments.
var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map slash-separated paths to content.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

// siteFlags returns build flags pointing at content/, static/, and public/
// under root.
func siteFlags(root string) *buildFlags {
	return &buildFlags{
		dirs: dirFlags{
			content: filepath.Join(root, "content"),
			static:  filepath.Join(root, "static"),
			output:  filepath.Join(root, "public"),
		},
		workers: 2,
	}
}

// readFile reads a file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// mockConverter records inputs and returns canned pages.
type mockConverter struct {
	mu     sync.Mutex
	calls  []mdsite.Input
	errFor map[string]error // by input name
	drafts map[string]bool  // by input name
}

func newMockConverter() *mockConverter {
	return &mockConverter{errFor: map[string]error{}, drafts: map[string]bool{}}
}

func (m *mockConverter) Convert(_ context.Context, input mdsite.Input) (*mdsite.Page, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if err := m.errFor[input.Name]; err != nil {
		return nil, err
	}
	return &mdsite.Page{
		Title: input.Name,
		HTML:  []byte("<html>" + input.Markdown + "</html>"),
		Draft: m.drafts[input.Name],
	}, nil
}

func (m *mockConverter) getCalls() []mdsite.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdsite.Input(nil), m.calls...)
}
