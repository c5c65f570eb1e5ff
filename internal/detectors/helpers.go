package detectors

import (
	"sort"

	"github.com/dlclark/regexp2"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// lineIndex holds the rune offsets of every '\n' in a text.
type lineIndex []int

func newLineIndex(s string) lineIndex {
	li := lineIndex{}
	n := 0
	for _, r := range s {
		if r == '\n' {
			li = append(li, n)
		}
		n++
	}
	return li
}

// lineAt returns the 1-based line holding rune offset off: the number of
// newlines strictly before off, plus one.
func (li lineIndex) lineAt(off int) int {
	return sort.SearchInts(li, off) + 1
}

// findAll emits one finding per match of re over the whole text. regexp2
// reports match positions in runes, which is what lineIndex counts.
func findAll(path string, data []byte, re *regexp2.Regexp, rule config.Rule) []types.Finding {
	var out []types.Finding
	text := string(data)
	var li lineIndex
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		if li == nil {
			li = newLineIndex(text)
		}
		out = append(out, rule.Finding(path, li.lineAt(m.Index)))
		m, err = re.FindNextMatch(m)
	}
	return out
}
