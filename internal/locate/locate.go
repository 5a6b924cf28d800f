package locate

import (
	"strconv"
	"strings"

	"github.com/dgallion1/citator/internal/play"
)

// MinTokens is the shortest quotation, in words, that will be located.
const MinTokens = 3

// Range is an inclusive span of line numbers within one scene.
type Range struct {
	First int `json:"first_line"`
	Last  int `json:"last_line"`
}

// String renders "n" for a single line and "first-last" otherwise.
func (r Range) String() string {
	if r.First == r.Last {
		return strconv.Itoa(r.First)
	}
	return strconv.Itoa(r.First) + "-" + strconv.Itoa(r.Last)
}

// Locate finds the lines of scene that searchText was copied from.
//
// Words are compared literally after splitting on single spaces. The match
// is anchored at the first occurrence of the first search word and may run
// across line breaks. A mismatch after the anchor is reported as not found;
// later occurrences of the first word are not tried.
func Locate(searchText string, scene *play.Scene) (Range, bool) {
	if scene == nil {
		return Range{}, false
	}
	return LocateLines(searchText, scene.Lines)
}

// LocateLines is Locate over a bare line sequence.
func LocateLines(searchText string, lines []play.Line) (Range, bool) {
	words := tokenize(searchText)
	if len(words) < MinTokens {
		return Range{}, false
	}

	for i, l := range lines {
		lineWords := wordsOf(l)
		for j, w := range lineWords {
			if w != words[0] {
				continue
			}
			last, ok := matchFrom(words[1:], lines, i, lineWords, j+1)
			if !ok {
				return Range{}, false
			}
			return Range{First: l.Number(), Last: lines[last].Number()}, true
		}
	}
	return Range{}, false
}

// matchFrom consumes words starting at position pos of line index li, moving
// on to following lines as each one runs out. It returns the index of the
// line holding the final word.
func matchFrom(words []string, lines []play.Line, li int, lineWords []string, pos int) (int, bool) {
	for _, w := range words {
		for pos >= len(lineWords) {
			li++
			if li >= len(lines) {
				return 0, false
			}
			lineWords = wordsOf(lines[li])
			pos = 0
		}
		if lineWords[pos] != w {
			return 0, false
		}
		pos++
	}
	return li, true
}

func wordsOf(l play.Line) []string {
	if l == nil {
		return nil
	}
	return tokenize(l.Text())
}

// tokenize splits on single spaces. Trailing empty words are dropped;
// leading and interior ones are kept.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	w := strings.Split(s, " ")
	for len(w) > 0 && w[len(w)-1] == "" {
		w = w[:len(w)-1]
	}
	return w
}
