// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy string matching
// ABOUTME: Filter ranks arbitrary items by a string projection, best match first

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	return convert(fuzzy.Find(pattern, items))
}

// FindFrom performs fuzzy matching using a custom string source.
func FindFrom(pattern string, data fuzzy.Source) []Match {
	return convert(fuzzy.FindFrom(pattern, data))
}

// Filter returns the items whose value matches pattern, best match first.
// Ties keep their input order. An empty pattern returns a copy of items.
func Filter[T any](pattern string, items []T, value func(T) string) []T {
	if pattern == "" {
		return append([]T(nil), items...)
	}
	matches := FindFrom(pattern, projection[T]{items: items, value: value})
	out := make([]T, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}

// projection adapts a slice to fuzzy.Source.
type projection[T any] struct {
	items []T
	value func(T) string
}

func (p projection[T]) String(i int) string { return p.value(p.items[i]) }
func (p projection[T]) Len() int            { return len(p.items) }

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
