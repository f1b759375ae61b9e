// ABOUTME: Plain text inputs: one entry per blank-line separated paragraph
// ABOUTME: Line breaks inside a paragraph are kept

package source

import "strings"

func parseText(name, content string) []Entry {
	var entries []Entry
	var para []string
	start := 0

	flush := func() {
		if len(para) == 0 {
			return
		}
		entries = append(entries, Entry{
			Kind:   KindText,
			Body:   strings.Join(para, "\n"),
			Source: name,
			Line:   start,
		})
		para = para[:0]
	}

	for i, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			flush()
			continue
		}
		if len(para) == 0 {
			start = i + 1
		}
		para = append(para, line)
	}
	flush()
	return entries
}
