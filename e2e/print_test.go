// ABOUTME: E2E tests for print mode: renders a viewport of the list to stdout without a terminal
// ABOUTME: Covers text, json and stream-json output from files and generated entries

package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrint_TextViewport(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	out := runPrint(t, "--generate", "50", "--height", "5")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) == 0 || len(lines) > 5 {
		t.Fatalf("got %d lines, want 1..5:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "Section 1") {
		t.Errorf("output missing first header:\n%s", out)
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("piped text output carries escape sequences: %q", out)
	}
}

func TestPrint_IndexJumpsToItem(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	out := runPrint(t, "--generate", "50", "--height", "3", "--index", "20")
	if !strings.Contains(out, "Section 3") {
		t.Errorf("item 20 is the third header; output:\n%s", out)
	}
}

func TestPrint_MarkdownFileJSON(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	path := filepath.Join(t.TempDir(), "notes.md")
	doc := "# Intro\n\nFirst paragraph.\n\n# Details\n\nSecond paragraph.\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out := runPrint(t, "--format", "json", "--markdown-style", "notty", path)
	for _, want := range []string{`"scroll_top":0`, `"lines":[`, `"pool":{`, "Intro"} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %s:\n%s", want, out)
		}
	}
}

func TestPrint_StreamJSONPagesToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	out := runPrint(t, "--generate", "40", "--height", "10", "--format", "stream-json")
	pages := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(pages) < 2 {
		t.Fatalf("got %d pages, want several:\n%s", len(pages), out)
	}
	if !strings.Contains(pages[0], `"scroll_top":0`) {
		t.Errorf("first page = %s, want scroll_top 0", pages[0])
	}
}
