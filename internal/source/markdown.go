// ABOUTME: Markdown inputs: headings become header entries, the text between them one section entry
// ABOUTME: Headings inside fenced code blocks are not split on

package source

import (
	"fmt"
	"strings"
)

func parseMarkdown(name, content string) ([]Entry, error) {
	fm, body, skipped, err := ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}

	sectionKind := KindMarkdown
	switch fm.Kind {
	case "", KindMarkdown:
	case KindText:
		sectionKind = KindText
	default:
		return nil, fmt.Errorf("frontmatter kind %q: want %s or %s", fm.Kind, KindMarkdown, KindText)
	}

	var entries []Entry
	if fm.Title != "" {
		entries = append(entries, Entry{Kind: KindHeader, Title: fm.Title, Source: name, Line: 1})
	}

	var section []string
	start := 0
	flush := func() {
		// Drop blank lines around the section.
		for len(section) > 0 && strings.TrimSpace(section[0]) == "" {
			section = section[1:]
			start++
		}
		for len(section) > 0 && strings.TrimSpace(section[len(section)-1]) == "" {
			section = section[:len(section)-1]
		}
		if len(section) > 0 {
			entries = append(entries, Entry{
				Kind:   sectionKind,
				Body:   strings.Join(section, "\n"),
				Source: name,
				Line:   start,
			})
		}
		section = nil
	}

	inFence := false
	for i, line := range strings.Split(body, "\n") {
		lineNo := skipped + i + 1
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
		if title, ok := headingText(line); ok && !inFence {
			flush()
			entries = append(entries, Entry{Kind: KindHeader, Title: title, Source: name, Line: lineNo})
			continue
		}
		if len(section) == 0 {
			start = lineNo
		}
		section = append(section, line)
	}
	flush()
	return entries, nil
}

// headingText returns the text of an ATX heading line ("# Title").
func headingText(line string) (string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return "", false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "#"))
	return title, true
}
