// ABOUTME: JSON-lines inputs: one {"kind","title","body"} object per line
// ABOUTME: Decoded with easyjson's jlexer, skipping unknown fields

package source

import (
	"fmt"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

// record is the wire shape of a JSON-lines entry.
type record struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (r *record) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "kind":
			r.Kind = in.String()
		case "title":
			r.Title = in.String()
		case "body", "text":
			r.Body = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func parseJSONL(name, content string) ([]Entry, error) {
	var entries []Entry
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r record
		if err := easyjson.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if r.Kind == "" {
			r.Kind = KindText
			if r.Body == "" {
				r.Kind = KindHeader
			}
		}
		entries = append(entries, Entry{
			Kind:   r.Kind,
			Title:  r.Title,
			Body:   r.Body,
			Source: name,
			Line:   i + 1,
		})
	}
	return entries, nil
}
