// ABOUTME: Synthetic entries for demos and benchmarks: seeded mix of headers, text and markdown
// ABOUTME: The same seed always yields the same entries

package source

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var words = strings.Fields(`virtual list row pool index splice scroll viewport
template render window height offset item strip buffer lease kind reuse
terminal frame cursor layout surface event cache prefix tree node`)

// Generate returns n synthetic entries. Every tenth entry is a header; the
// rest alternate between text and markdown with varying lengths.
func Generate(n int, seed uint64) []Entry {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	entries := make([]Entry, 0, max(n, 0))
	section := 0

	for i := range max(n, 0) {
		e := Entry{Source: "generated", Line: i + 1}
		switch {
		case i%10 == 0:
			section++
			e.Kind = KindHeader
			e.Title = fmt.Sprintf("Section %d", section)
		case rng.IntN(3) == 0:
			e.Kind = KindMarkdown
			e.Body = fmt.Sprintf("**Item %d**: %s\n\n- %s\n- `%s`",
				i, sentence(rng, 4+rng.IntN(12)), sentence(rng, 3), words[rng.IntN(len(words))])
		default:
			e.Kind = KindText
			e.Body = fmt.Sprintf("%d. %s", i, sentence(rng, 3+rng.IntN(40)))
		}
		entries = append(entries, e)
	}
	return entries
}

func sentence(rng *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.IntN(len(words))]
	}
	return strings.Join(parts, " ")
}
