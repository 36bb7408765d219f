package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startPosition = [][]string{
	{"♜", "♞", "♝", "♛", "♚", "♝", "♞", "♜"},
	{"♟", "♟", "♟", "♟", "♟", "♟", "♟", "♟"},
	{"", "", "", "", "", "", "", ""},
	{"", "", "", "", "", "", "", ""},
	{"", "", "", "", "", "", "", ""},
	{"", "", "", "", "", "", "", ""},
	{"♙", "♙", "♙", "♙", "♙", "♙", "♙", "♙"},
	{"♖", "♘", "♗", "♕", "♔", "♗", "♘", "♖"},
}

// boardMarkup renders squares the way the chess component does, with
// quote wrapping the class value.
func boardMarkup(rows [][]string, quote string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="chess-board" data-testid="chess-board">`)
	for r, row := range rows {
		for c, glyph := range row {
			shade := "light"
			if (r+c)%2 == 1 {
				shade = "dark"
			}
			fmt.Fprintf(&sb, "<div class=%schess-square %s%s>%s</div>", quote, shade, quote, glyph)
		}
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func snapshotDocument(meta string, board string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8" /><title>Component Screenshot</title></head>
<body>
<div class="game-container">
` + meta + `
` + board + `
</div>
</body>
</html>`
}

const fullMeta = `<p data-testid="game-id">Game ID: 6f1c2a9e-58b4-4c1e-9a57-0d2b1f3e4c5d</p>
<p>Game Type: Chess</p>
<p>Last Updated: 2025-03-14 09:26:53 +00:00</p>`

func TestParse_FullBoard(t *testing.T) {
	e := NewExtractor(nil)
	rec, err := e.Parse(snapshotDocument(fullMeta, boardMarkup(startPosition, `"`)))
	require.NoError(t, err)

	assert.Equal(t, "6f1c2a9e-58b4-4c1e-9a57-0d2b1f", rec.GameID)
	assert.Equal(t, "Chess", rec.GameType)
	assert.Equal(t, "2025-03-14 09:26:53 +00:00", rec.LastUpdated)
	assert.Equal(t, 64, rec.Squares())
	if diff := cmp.Diff(startPosition, rec.Board); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MissingMetadata(t *testing.T) {
	e := NewExtractor(nil)
	rec, err := e.Parse(snapshotDocument(`<p>Game Type: Chess</p>`, boardMarkup(startPosition, `"`)))
	require.NoError(t, err)

	assert.Empty(t, rec.GameID)
	assert.Equal(t, "Chess", rec.GameType)
	assert.Empty(t, rec.LastUpdated)
}

func TestParse_LastUpdatedTruncated(t *testing.T) {
	long := strings.Repeat("é", 80)
	e := NewExtractor(nil)
	rec, err := e.Parse(snapshotDocument("<p>Last Updated: "+long+"</p>", ""))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 50), rec.LastUpdated)
}

func TestParse_MetadataEntitiesDecoded(t *testing.T) {
	e := NewExtractor(nil)
	rec, err := e.Parse(`<span>Game Type: Chess &amp; Variants </span>`)
	require.NoError(t, err)
	assert.Equal(t, "Chess & Variants", rec.GameType)
}

func TestParse_NoSquares(t *testing.T) {
	e := NewExtractor(nil)
	rec, err := e.Parse(snapshotDocument(fullMeta, ""))
	require.NoError(t, err)
	assert.Empty(t, rec.Board)
	assert.Zero(t, rec.Squares())
}

func TestChunkRows(t *testing.T) {
	flat := func(n int) []string {
		s := make([]string, n)
		for i := range s {
			s[i] = fmt.Sprint(i)
		}
		return s
	}

	tests := []struct {
		name    string
		n       int
		rows    int
		lastLen int
	}{
		{"empty", 0, 0, 0},
		{"partial", 5, 1, 5},
		{"full", 64, 8, 8},
		{"short final row", 61, 8, 5},
		{"overflow dropped", 80, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := chunkRows(flat(tt.n))
			require.Len(t, rows, tt.rows)
			if tt.rows > 0 {
				assert.Len(t, rows[len(rows)-1], tt.lastLen)
				assert.Equal(t, "0", rows[0][0])
			}
		})
	}
}

func TestMatchers_QuoteStyles(t *testing.T) {
	pattern, err := NewPatternMatcher("")
	require.NoError(t, err)

	matchers := map[string]SquareMatcher{
		"dom":     NewDOMMatcher(DefaultMarker),
		"pattern": pattern,
	}
	quotes := map[string]string{
		"single": `"`,
		"double": `""`,
	}
	for mname, m := range matchers {
		for qname, q := range quotes {
			t.Run(mname+"/"+qname, func(t *testing.T) {
				rec, err := NewExtractor(m).Parse(snapshotDocument(fullMeta, boardMarkup(startPosition, q)))
				require.NoError(t, err)
				if diff := cmp.Diff(startPosition, rec.Board); diff != "" {
					t.Errorf("board mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestDOMMatcher_ClassToken(t *testing.T) {
	content := `
<div class="chess-board">
  <div class="light chess-square selected"><span>♔</span></div>
  <div class='chess-square dark'>&#9813;</div>
  <div class="chess-squares">x</div>
  <div class="not-chess-square">y</div>
  <span class="chess-square"></span>
</div>`
	got, err := NewDOMMatcher(DefaultMarker).Squares(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"♔", "♕", ""}, got)
}

func TestDOMMatcher_CustomMarker(t *testing.T) {
	content := `<div class="sq">a</div><div class="chess-square">b</div><div class="sq">c</div>`
	got, err := NewDOMMatcher("sq").Squares(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestPatternMatcher_Custom(t *testing.T) {
	m, err := NewPatternMatcher(`<td class="cell">([^<]*)</td>`)
	require.NoError(t, err)
	got, err := m.Squares(`<tr><td class="cell">♞</td><td class="cell"></td></tr>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"♞", ""}, got)
}

func TestPatternMatcher_Invalid(t *testing.T) {
	_, err := NewPatternMatcher(`(`)
	assert.Error(t, err)

	_, err = NewPatternMatcher(`<div>[^<]*</div>`)
	assert.ErrorContains(t, err, "capture group")
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultMarker, m.(*DOMMatcher).Marker)

	m, err = NewMatcher("pattern", "", "")
	require.NoError(t, err)
	assert.IsType(t, &PatternMatcher{}, m)

	_, err = NewMatcher("xpath", "", "")
	assert.Error(t, err)
}

func TestExtract_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess_flow3_1_start.html")
	require.NoError(t, os.WriteFile(path, []byte(snapshotDocument(fullMeta, boardMarkup(startPosition, `"`))), 0o644))

	rec, err := NewExtractor(nil).Extract(path)
	require.NoError(t, err)
	assert.Len(t, rec.Board, 8)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewExtractor(nil).Extract(filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}
