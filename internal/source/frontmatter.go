// ABOUTME: YAML frontmatter of markdown inputs, parsed with yaml.v3
// ABOUTME: Frontmatter may title the document and override the kind of its section entries

package source

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ErrUnterminatedFrontmatter is returned when an opening --- has no match.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter: missing closing ---")

// Frontmatter holds the recognised frontmatter keys of a markdown input.
type Frontmatter struct {
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"` // kind for section bodies: markdown (default) or text
}

// ParseFrontmatter splits YAML frontmatter from markdown content. Content
// without frontmatter yields a zero Frontmatter and the content unchanged.
// skipped is the number of lines consumed by the frontmatter block.
func ParseFrontmatter(content string) (fm Frontmatter, body string, skipped int, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return Frontmatter{}, normalized, 0, nil
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	var yamlContent, after string
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		after = rest[len(frontmatterDelimiter):]
	} else {
		var ok bool
		yamlContent, after, ok = strings.Cut(rest, "\n"+frontmatterDelimiter)
		if !ok {
			return Frontmatter{}, "", 0, ErrUnterminatedFrontmatter
		}
	}

	if err := yaml.Unmarshal([]byte(yamlContent), &fm); err != nil {
		return Frontmatter{}, "", 0, fmt.Errorf("parse frontmatter YAML: %w", err)
	}

	body = strings.TrimPrefix(after, "\n")
	skipped = strings.Count(normalized[:len(normalized)-len(body)], "\n")
	return fm, body, skipped, nil
}
