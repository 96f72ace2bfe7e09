package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		style        string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "heading with id",
			input:        "# Hello World",
			wantContains: []string{"<h1", `id="hello-world"`, "Hello World</h1>"},
			wantNot:      []string{"<!DOCTYPE", "<html>"},
		},
		{
			name:         "GFM table",
			input:        "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<th>", "<td>"},
		},
		{
			name:         "nested emphasis",
			input:        "**bold _and italic_**",
			wantContains: []string{"<strong>bold <em>and italic</em></strong>"},
		},
		{
			name:    "raw html dropped",
			input:   "<script>alert(1)</script>",
			wantNot: []string{"<script>"},
		},
		{
			name:         "code without highlighting",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`<code class="language-go">`},
			wantNot:      []string{`class="chroma"`},
		},
		{
			name:         "code with highlighting",
			style:        "monokai",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewGoldmarkConverter(tt.style)
			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("ToHTML() should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("").ToHTML(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
