// ABOUTME: HTML inputs parsed with x/net/html: headings become header entries, blocks text entries
// ABOUTME: Scripts, styles and navigation chrome are skipped

package source

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

func parseHTML(name, content string) ([]Entry, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var entries []Entry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "head", "script", "style", "nav", "noscript", "iframe", "template":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if title := collapse(textOf(n)); title != "" {
					entries = append(entries, Entry{Kind: KindHeader, Title: title, Source: name})
				}
				return
			case "p", "blockquote", "dd", "figcaption":
				if body := collapse(textOf(n)); body != "" {
					entries = append(entries, Entry{Kind: KindText, Body: body, Source: name})
				}
				return
			case "li":
				if body := collapse(textOf(n)); body != "" {
					entries = append(entries, Entry{Kind: KindText, Body: "• " + body, Source: name})
				}
				return
			case "pre":
				if body := strings.Trim(textOf(n), "\n"); body != "" {
					entries = append(entries, Entry{Kind: KindText, Body: body, Source: name})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return entries, nil
}

// textOf concatenates the text nodes below n.
func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteByte('\n')
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
