package tasclean

import (
	"fmt"
	"strings"
)

// LineBreak selects which sequence the trailing blank line rule collapses.
type LineBreak string

const (
	LineBreakCRLF LineBreak = "crlf"
	LineBreakLF   LineBreak = "lf"
	LineBreakAuto LineBreak = "auto"
)

func ParseLineBreak(s string) (LineBreak, error) {
	switch lb := LineBreak(strings.ToLower(strings.TrimSpace(s))); lb {
	case LineBreakCRLF, LineBreakLF, LineBreakAuto:
		return lb, nil
	default:
		return "", fmt.Errorf("unknown line break mode %q (want crlf, lf or auto)", s)
	}
}

// Sequence returns the literal break for text. Auto picks CRLF only when the
// text already ends in one.
func (lb LineBreak) Sequence(text string) string {
	switch lb {
	case LineBreakLF:
		return "\n"
	case LineBreakAuto:
		if strings.HasSuffix(text, "\r\n") {
			return "\r\n"
		}
		return "\n"
	default:
		return "\r\n"
	}
}

// CollapseTrailingBreaks replaces a run of two or more sep sequences at the
// very end of text with a single sep, returning how many were dropped.
func CollapseTrailingBreaks(text, sep string) (string, int) {
	if sep == "" {
		return text, 0
	}

	end := len(text)
	count := 0
	for strings.HasSuffix(text[:end], sep) {
		end -= len(sep)
		count++
	}

	if count < 2 {
		return text, 0
	}
	return text[:end] + sep, count - 1
}
