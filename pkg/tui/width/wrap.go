// ABOUTME: ANSI-aware text wrapping and truncation
// ABOUTME: WrapWords wraps row text at word boundaries; TruncateToWidth adds an ellipsis

package width

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// WrapTextWithAnsi wraps s into lines of at most maxWidth visible columns.
// ANSI escape sequences are preserved and do not count toward width.
// Words are broken if they exceed maxWidth.
func WrapTextWithAnsi(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var currentLine strings.Builder
	currentWidth := 0
	var sgr ActiveSGR

	i := 0
	for i < len(s) {
		if s[i] == '\n' {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
			// Carry SGR state to next line
			prefix := sgr.String()
			if prefix != "" {
				currentLine.WriteString(prefix)
			}
			i++
			continue
		}

		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			seq := s[i:end]
			sgr.Apply(seq)
			currentLine.WriteString(seq)
			i = end
			continue
		}

		// Read a grapheme cluster
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)

		if currentWidth+w > maxWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
			prefix := sgr.String()
			if prefix != "" {
				currentLine.WriteString(prefix)
			}
		}

		currentLine.WriteString(cluster)
		currentWidth += w
		i += len(s[i:]) - len(rest)
	}

	lines = append(lines, currentLine.String())
	return lines
}

// TruncateToWidth truncates s to at most maxWidth visible columns.
// If truncation occurs, the last visible character is replaced with ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := VisibleWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "\u2026" // single ellipsis character
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1 // Leave room for ellipsis
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m") // Reset before ellipsis
	b.WriteRune('\u2026')
	return b.String()
}

type wrapKey struct {
	text  string
	width int
}

// Rows are wrapped once when measured and again when bound to a row.
var wrapCache = newLRU[wrapKey, []string](cacheSize)

// WrapWords wraps s at word boundaries into lines of at most maxWidth
// visible columns. Words wider than maxWidth are broken with
// WrapTextWithAnsi. Runs of spaces collapse to one; newlines are kept.
// The returned slice is owned by the caller.
func WrapWords(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	k := wrapKey{text: s, width: maxWidth}
	if lines, ok := wrapCache.get(k); ok {
		return slices.Clone(lines)
	}
	lines := wrapWords(s, maxWidth)
	wrapCache.put(k, lines)
	return slices.Clone(lines)
}

func wrapWords(s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur string
		curWidth := 0
		for _, word := range strings.Fields(para) {
			w := VisibleWidth(word)
			switch {
			case curWidth == 0 && w <= maxWidth:
				cur, curWidth = word, w
			case curWidth > 0 && curWidth+1+w <= maxWidth:
				cur += " " + word
				curWidth += 1 + w
			default:
				if curWidth > 0 {
					lines = append(lines, cur)
					cur, curWidth = "", 0
				}
				if w <= maxWidth {
					cur, curWidth = word, w
					continue
				}
				pieces := WrapTextWithAnsi(word, maxWidth)
				lines = append(lines, pieces[:len(pieces)-1]...)
				cur = pieces[len(pieces)-1]
				curWidth = VisibleWidth(cur)
			}
		}
		lines = append(lines, cur)
	}
	return lines
}
