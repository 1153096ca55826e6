package tasclean

import (
	"regexp"
	"strings"
)

// A run of spaces or tabs followed by a line terminator or the end of text.
// The terminator is captured so it can be put back.
var trailingSpaceRegex = regexp.MustCompile(`[ \t]+([\r\n]|$)`)

// TrimStats counts what TrimTrailingSpace removed.
type TrimStats struct {
	Blocks int
	Chars  int
}

// TrimTrailingSpace deletes every maximal run of spaces and tabs that ends a
// line or the text. Whitespace between words is left alone.
func TrimTrailingSpace(text string) (string, TrimStats) {
	matches := trailingSpaceRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, TrimStats{}
	}

	var stats TrimStats
	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		runStart, runEnd := m[0], m[2]
		b.WriteString(text[last:runStart])
		last = runEnd

		stats.Blocks++
		stats.Chars += runEnd - runStart
	}
	b.WriteString(text[last:])

	return b.String(), stats
}
