// ABOUTME: Tests for entry loaders, parallel LoadAll, synthetic generation and the catalog
// ABOUTME: Inputs are written to t.TempDir so LoadAll exercises real files

package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func kinds(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"notes.md":      FormatMarkdown,
		"A.MARKDOWN":    FormatMarkdown,
		"log.jsonl":     FormatJSONL,
		"page.htm":      FormatHTML,
		"readme":        FormatText,
		"data.txt":      FormatText,
		Stdin:           FormatText,
		"dir.md/x.html": FormatHTML,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestParse_Text(t *testing.T) {
	t.Parallel()

	entries, err := Parse("t.txt", FormatText, strings.NewReader("one\ntwo  \n\n\nthree\r\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Body != "one\ntwo" || entries[0].Line != 1 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Body != "three" || entries[1].Line != 5 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParse_TextNormalizesNFC(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent composes to "é".
	entries, err := Parse("n.txt", FormatText, strings.NewReader("cafe\u0301"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if entries[0].Body != "caf\u00e9" {
		t.Errorf("Body = %q, want composed form", entries[0].Body)
	}
}

func TestParse_Markdown(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: Guide\n---\nintro\n\n# First\n\nbody one\n\n```\n# not a heading\n```\n## Second ##\nbody two\n"
	entries, err := Parse("g.md", FormatMarkdown, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	wantKinds := []string{KindHeader, KindMarkdown, KindHeader, KindMarkdown, KindHeader, KindMarkdown}
	if got := kinds(entries); !reflect.DeepEqual(got, wantKinds) {
		t.Fatalf("kinds = %v, want %v", got, wantKinds)
	}
	if entries[0].Title != "Guide" {
		t.Errorf("frontmatter header = %q", entries[0].Title)
	}
	if entries[1].Body != "intro" || entries[1].Line != 4 {
		t.Errorf("intro = %+v", entries[1])
	}
	if entries[2].Title != "First" || entries[2].Line != 6 {
		t.Errorf("first heading = %+v", entries[2])
	}
	if !strings.Contains(entries[3].Body, "# not a heading") {
		t.Errorf("fenced heading split the section: %q", entries[3].Body)
	}
	if entries[4].Title != "Second" {
		t.Errorf("closing hashes kept: %q", entries[4].Title)
	}
}

func TestParse_MarkdownKindOverride(t *testing.T) {
	t.Parallel()

	entries, err := Parse("k.md", FormatMarkdown, strings.NewReader("---\nkind: text\n---\nplain"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != KindText {
		t.Errorf("entries = %+v, want one text entry", entries)
	}

	if _, err := Parse("k.md", FormatMarkdown, strings.NewReader("---\nkind: video\n---\nx")); err == nil {
		t.Error("unsupported frontmatter kind should fail")
	}
}

func TestParse_JSONL(t *testing.T) {
	t.Parallel()

	input := `{"kind":"markdown","body":"**hi**","extra":{"n":[1,2]}}

{"title":"Only a title"}
{"text":"plain","title":null}
`
	entries, err := Parse("r.jsonl", FormatJSONL, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	wantKinds := []string{KindMarkdown, KindHeader, KindText}
	if got := kinds(entries); !reflect.DeepEqual(got, wantKinds) {
		t.Fatalf("kinds = %v, want %v", got, wantKinds)
	}
	if entries[1].Line != 3 || entries[2].Body != "plain" {
		t.Errorf("entries = %+v", entries)
	}

	_, err = Parse("bad.jsonl", FormatJSONL, strings.NewReader("{\"kind\":\"text\"}\n{oops}\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want a line 2 error", err)
	}
}

func TestParse_HTML(t *testing.T) {
	t.Parallel()

	input := `<html><head><title>T</title><style>p{}</style></head><body>
<nav><p>menu</p></nav>
<h1>Heading  <em>one</em></h1>
<p>First   paragraph<br>continued</p>
<ul><li>alpha</li><li>beta</li></ul>
<pre>
  code
</pre>
<script>var x;</script>
</body></html>`
	entries, err := Parse("p.html", FormatHTML, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Entry{
		{Kind: KindHeader, Title: "Heading one", Source: "p.html"},
		{Kind: KindText, Body: "First paragraph continued", Source: "p.html"},
		{Kind: KindText, Body: "• alpha", Source: "p.html"},
		{Kind: KindText, Body: "• beta", Source: "p.html"},
		{Kind: KindText, Body: "  code", Source: "p.html"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v\nwant %+v", entries, want)
	}
}

func TestLoadAll_KeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{
		writeInput(t, dir, "a.txt", "a1\n\na2"),
		writeInput(t, dir, "b.md", "# b"),
		writeInput(t, dir, "c.jsonl", `{"body":"c"}`),
	}

	entries, err := LoadAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.FilterValue())
	}
	want := []string{"a1", "a2", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadAll() = %v, want %v", got, want)
	}
	if entries[0].Source != paths[0] {
		t.Errorf("Source = %q, want %q", entries[0].Source, paths[0])
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ok := writeInput(t, dir, "ok.txt", "fine")

	_, err := LoadAll(context.Background(), []string{ok, filepath.Join(dir, "missing.txt")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	a := Generate(50, 7)
	b := Generate(50, 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("Generate is not deterministic for a fixed seed")
	}
	if len(a) != 50 {
		t.Fatalf("len = %d, want 50", len(a))
	}
	for i, e := range a {
		if (i%10 == 0) != (e.Kind == KindHeader) {
			t.Errorf("entry %d kind = %s", i, e.Kind)
		}
	}
	if len(Generate(-3, 1)) != 0 {
		t.Error("negative count should yield no entries")
	}
}

func TestEntry_Accessors(t *testing.T) {
	t.Parallel()

	e := Entry{Title: "T", Body: "B", Source: "f.md", Line: 3}
	if e.FilterValue() != "T B" || e.Heading() != "T" || e.Location() != "f.md:3" {
		t.Errorf("accessors = %q %q %q", e.FilterValue(), e.Heading(), e.Location())
	}
	e = Entry{Body: "B", Source: "generated"}
	if e.Heading() != "B" || e.Location() != "generated" {
		t.Errorf("accessors = %q %q", e.Heading(), e.Location())
	}
}

func TestCatalog_Describe(t *testing.T) {
	t.Parallel()

	c := NewCatalog(20, "notty")
	tests := []struct {
		name     string
		entry    Entry
		wantKind string
		minSize  int
	}{
		{"text", Entry{Kind: KindText, Body: "one two three four five six seven"}, KindText, 2},
		{"header", Entry{Kind: KindHeader, Title: "Intro"}, KindHeader, 2},
		{"markdown", Entry{Kind: KindMarkdown, Body: "hello"}, KindMarkdown, 1},
		{"unknown", Entry{Kind: "video", Body: "x"}, KindText, 1},
	}
	for _, tt := range tests {
		size, kind := c.Describe(tt.entry)
		if kind != tt.wantKind {
			t.Errorf("%s: kind = %q, want %q", tt.name, kind, tt.wantKind)
		}
		if size < tt.minSize {
			t.Errorf("%s: size = %d, want >= %d", tt.name, size, tt.minSize)
		}
		if _, ok := c.Templates().Template(kind); !ok {
			t.Errorf("%s: no template for %q", tt.name, kind)
		}
	}
}
