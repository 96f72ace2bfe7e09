package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
		},
		{
			name: "unknown fields ignored",
			data: []byte("name: test\nextra: value"),
			dest: &testConfig{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tt.dest.(*testConfig).Name != "test" {
				t.Errorf("Name = %q, want %q", tt.dest.(*testConfig).Name, "test")
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "known fields", data: "name: a\ncount: 1"},
		{name: "unknown field rejected", data: "name: a\nbogus: 1", wantErr: true},
		{name: "type mismatch rejected", data: "count: many", wantErr: true},
		{name: "syntax error", data: "name: [unclosed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg testConfig
			err := yamlutil.UnmarshalStrict([]byte(tt.data), &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "yamlutil:") {
				t.Errorf("UnmarshalStrict() error = %q, want yamlutil prefix", err)
			}
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	// Not parallel: mutates package-level MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 8
	defer func() { yamlutil.MaxInputSize = orig }()

	var cfg testConfig
	err := yamlutil.Unmarshal([]byte("name: far too long"), &cfg)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestSplitFrontMatter - Separates YAML metadata from page body
// ---------------------------------------------------------------------------

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantMeta string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "front matter and body",
			content:  "---\ntitle: Home\n---\n# Welcome",
			wantMeta: "title: Home\n",
			wantBody: "# Welcome",
			wantOK:   true,
		},
		{
			name:     "empty front matter",
			content:  "---\n---\nbody",
			wantMeta: "",
			wantBody: "body",
			wantOK:   true,
		},
		{
			name:     "closing delimiter at end of input",
			content:  "---\ntitle: x\n---",
			wantMeta: "title: x\n",
			wantBody: "",
			wantOK:   true,
		},
		{
			name:     "trailing spaces on delimiters",
			content:  "---  \ntitle: x\n--- \nbody",
			wantMeta: "title: x\n",
			wantBody: "body",
			wantOK:   true,
		},
		{
			name:     "no front matter",
			content:  "# Title\n\nText",
			wantBody: "# Title\n\nText",
		},
		{
			name:     "unclosed front matter",
			content:  "---\ntitle: x\n# Title",
			wantBody: "---\ntitle: x\n# Title",
		},
		{
			name:     "delimiter not on first line",
			content:  "intro\n---\ntitle: x\n---\n",
			wantBody: "intro\n---\ntitle: x\n---\n",
		},
		{
			name:     "single line",
			content:  "---",
			wantBody: "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, ok := yamlutil.SplitFrontMatter(tt.content)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if meta != tt.wantMeta {
				t.Errorf("meta = %q, want %q", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("decodes title and draft", func(t *testing.T) {
		t.Parallel()

		fm, body, err := yamlutil.ParseFrontMatter("---\ntitle: About us\ndraft: true\nauthor: ignored\n---\ntext")
		if err != nil {
			t.Fatalf("ParseFrontMatter() unexpected error: %v", err)
		}
		if fm.Title != "About us" || !fm.Draft {
			t.Errorf("FrontMatter = %+v, want title and draft set", fm)
		}
		if body != "text" {
			t.Errorf("body = %q, want %q", body, "text")
		}
	})

	t.Run("no front matter", func(t *testing.T) {
		t.Parallel()

		fm, body, err := yamlutil.ParseFrontMatter("# Title")
		if err != nil {
			t.Fatalf("ParseFrontMatter() unexpected error: %v", err)
		}
		if fm != (yamlutil.FrontMatter{}) || body != "# Title" {
			t.Errorf("ParseFrontMatter() = %+v, %q; want zero value and input", fm, body)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, _, err := yamlutil.ParseFrontMatter("---\ntitle: [unclosed\n---\nbody")
		if err == nil {
			t.Fatal("ParseFrontMatter() expected error for invalid YAML")
		}
	})
}
