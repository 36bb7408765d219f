package snapshot

import (
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultMarker is the class the chess UI puts on every board square.
const DefaultMarker = "chess-square"

// DefaultPattern matches square divs in raw markup. The class value may be
// wrapped in single or doubled quote characters; snapshots written through
// a verbatim-string template carry the doubled form.
const DefaultPattern = `<div\s+class="{1,2}chess-square[^"]*"{1,2}\s*>([^<]*)</div>`

// SquareMatcher collects the inner text of every board square in document
// order.
type SquareMatcher interface {
	Squares(content string) ([]string, error)
}

// DOMMatcher parses the document and selects elements whose class list
// contains Marker.
type DOMMatcher struct {
	Marker string
}

// NewDOMMatcher returns a DOMMatcher for the given class token.
func NewDOMMatcher(marker string) *DOMMatcher {
	return &DOMMatcher{Marker: marker}
}

// Squares implements SquareMatcher. Nested squares are not descended into:
// the outer square's text already includes them.
func (m *DOMMatcher) Squares(content string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	squares := make([]string, 0, BoardSize*BoardSize)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, m.Marker) {
			squares = append(squares, collectText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return squares, nil
}

// hasClass reports whether the class list of n contains token.
func hasClass(n *html.Node, token string) bool {
	for _, c := range classTokens(n) {
		if c == token {
			return true
		}
	}
	return false
}

// classTokens returns the class list of n. A doubled-quote value such as
// class=""a b"" parses as an empty class attribute followed by bare
// attributes named a and b""; those bare names are taken as classes too.
func classTokens(n *html.Node) []string {
	var tokens []string
	inClass := false
	for _, a := range n.Attr {
		switch {
		case a.Key == "class":
			tokens = append(tokens, strings.Fields(a.Val)...)
			inClass = strings.TrimSpace(a.Val) == ""
		case inClass && a.Val == "":
			tokens = append(tokens, a.Key)
		default:
			inClass = false
		}
	}
	for i, t := range tokens {
		tokens[i] = strings.Trim(t, `"'`)
	}
	return tokens
}

func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// PatternMatcher runs a regular expression over the raw markup and takes
// the first capture group of every match as the square text.
type PatternMatcher struct {
	re *regexp.Regexp
}

// NewPatternMatcher compiles pattern. An empty pattern selects
// DefaultPattern. The pattern must have exactly one capture group.
func NewPatternMatcher(pattern string) (*PatternMatcher, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile square pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("square pattern %q: want 1 capture group, got %d", pattern, re.NumSubexp())
	}
	return &PatternMatcher{re: re}, nil
}

// Squares implements SquareMatcher.
func (m *PatternMatcher) Squares(content string) ([]string, error) {
	matches := m.re.FindAllStringSubmatch(content, -1)
	squares := make([]string, 0, len(matches))
	for _, match := range matches {
		squares = append(squares, stdhtml.UnescapeString(match[1]))
	}
	return squares, nil
}

// NewMatcher builds the matcher named by kind ("dom" or "pattern").
func NewMatcher(kind, marker, pattern string) (SquareMatcher, error) {
	switch kind {
	case "", "dom":
		if marker == "" {
			marker = DefaultMarker
		}
		return NewDOMMatcher(marker), nil
	case "pattern":
		return NewPatternMatcher(pattern)
	}
	return nil, fmt.Errorf("unknown square matcher %q", kind)
}
