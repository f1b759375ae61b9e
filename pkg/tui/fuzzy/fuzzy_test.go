// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Verifies match ranking and generic filtering behavior

package fuzzy

import "testing"

func TestFind_BasicMatch(t *testing.T) {
	t.Parallel()

	items := []string{"apple", "application", "banana", "apricot"}
	matches := Find("app", items)

	if len(matches) == 0 {
		t.Fatal("expected matches for 'app'")
	}
	for _, m := range matches {
		if m.Str == "banana" {
			t.Errorf("banana should not match 'app'")
		}
		if items[m.Index] != m.Str {
			t.Errorf("Index %d points at %q, want %q", m.Index, items[m.Index], m.Str)
		}
	}
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()

	matches := Find("zzz", []string{"cat", "dog", "fish"})
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

type row struct {
	id   int
	text string
}

func TestFilter(t *testing.T) {
	t.Parallel()

	rows := []row{
		{1, "row pool"},
		{2, "size index"},
		{3, "viewport renderer"},
		{4, "pooled rows"},
	}
	text := func(r row) string { return r.text }

	tests := []struct {
		name    string
		pattern string
		wantIDs []int
	}{
		{"empty pattern keeps all", "", []int{1, 2, 3, 4}},
		{"no hits", "qqq", nil},
		{"single hit", "index", []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(tt.pattern, rows, text)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d rows, want %d", tt.pattern, len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.id != tt.wantIDs[i] {
					t.Errorf("Filter(%q)[%d].id = %d, want %d", tt.pattern, i, r.id, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilter_RanksBestFirst(t *testing.T) {
	t.Parallel()

	rows := []row{{1, "xpxoxoxl"}, {2, "pool"}}
	got := Filter("pool", rows, func(r row) string { return r.text })
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].id != 2 {
		t.Errorf("best match id = %d, want 2 (contiguous match)", got[0].id)
	}
}

func TestFilter_EmptyPatternCopies(t *testing.T) {
	t.Parallel()

	rows := []row{{1, "a"}}
	got := Filter("", rows, func(r row) string { return r.text })
	got[0].id = 99
	if rows[0].id != 1 {
		t.Error("Filter with empty pattern must not alias its input")
	}
}
