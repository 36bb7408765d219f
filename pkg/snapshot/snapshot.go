// Package snapshot reads chess-board state out of HTML snapshots saved by the
// UI test suite.
package snapshot

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
)

const (
	// BoardSize is the number of squares per row and the maximum number of rows.
	BoardSize = 8

	maxGameIDLen      = 30
	maxLastUpdatedLen = 50
)

var (
	gameIDPattern      = regexp.MustCompile(`Game ID:\s*([^<]+)`)
	gameTypePattern    = regexp.MustCompile(`Game Type:\s*([^<]+)`)
	lastUpdatedPattern = regexp.MustCompile(`Last Updated:\s*([^<]+)`)
)

// Record is the board state captured in one snapshot.
type Record struct {
	GameID      string
	GameType    string
	LastUpdated string

	// Board holds rows of up to BoardSize glyphs in document order.
	// An empty string is an unoccupied square.
	Board [][]string
}

// Squares returns the number of squares across all rows.
func (r *Record) Squares() int {
	n := 0
	for _, row := range r.Board {
		n += len(row)
	}
	return n
}

// Extractor turns snapshot documents into Records.
type Extractor struct {
	squares SquareMatcher
}

// NewExtractor returns an Extractor collecting squares with m. A nil m
// selects the default DOM matcher for the "chess-square" class.
func NewExtractor(m SquareMatcher) *Extractor {
	if m == nil {
		m = NewDOMMatcher(DefaultMarker)
	}
	return &Extractor{squares: m}
}

// Extract reads and parses the snapshot at path.
func (e *Extractor) Extract(path string) (*Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return e.Parse(string(content))
}

// Parse builds a Record from snapshot markup. Missing metadata labels leave
// the corresponding field empty.
func (e *Extractor) Parse(content string) (*Record, error) {
	squares, err := e.squares.Squares(content)
	if err != nil {
		return nil, fmt.Errorf("collect squares: %w", err)
	}
	return &Record{
		GameID:      truncate(findLabel(gameIDPattern, content), maxGameIDLen),
		GameType:    findLabel(gameTypePattern, content),
		LastUpdated: truncate(findLabel(lastUpdatedPattern, content), maxLastUpdatedLen),
		Board:       chunkRows(squares),
	}, nil
}

func findLabel(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// chunkRows splits the flat square list into rows of BoardSize and keeps at
// most BoardSize rows. A trailing partial row is kept as is.
func chunkRows(squares []string) [][]string {
	rows := make([][]string, 0, BoardSize)
	for i := 0; i < len(squares) && len(rows) < BoardSize; i += BoardSize {
		end := i + BoardSize
		if end > len(squares) {
			end = len(squares)
		}
		row := make([]string, end-i)
		copy(row, squares[i:end])
		rows = append(rows, row)
	}
	return rows
}
