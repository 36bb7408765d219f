// Package label names review frames after the snapshot file they came from.
package label

import (
	"fmt"
	"path/filepath"
	"strings"
)

// rule maps filename substrings to a step name. Rules are tried in order
// and the first one with a matching substring wins.
type rule struct {
	keywords []string
	name     string
}

var rules = []rule{
	{[]string{"start"}, "Start"},
	{[]string{"new", "new_game"}, "New Game"},
	{[]string{"save"}, "Save"},
	{[]string{"load"}, "Load"},
	{[]string{"eat", "capture"}, "Eat"},
	{[]string{"second"}, "Second Move"},
	{[]string{"first"}, "First Move"},
}

// Infer returns "{index+1}. {step}" for the snapshot at position index of
// the input list.
//
// Snapshot flows usually put the move captures at positions 1 and 3, so a
// plain "move" file is named after its position when nothing more specific
// matched.
func Infer(filename string, index int) string {
	return fmt.Sprintf("%d. %s", index+1, stepName(filename, index))
}

func stepName(filename string, index int) string {
	name := strings.ToLower(filepath.Base(filename))
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.name
			}
		}
	}
	if strings.Contains(name, "move") {
		switch index {
		case 1:
			return "First Move"
		case 3:
			return "Second Move"
		}
		return "Move"
	}
	return "Step"
}
