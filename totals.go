package tasclean

import "fmt"

// Totals accumulates FileResults over one run.
type Totals struct {
	Blocks              int
	Chars               int
	FilesWithExtraLines int
	ExtraLines          int
}

// Add folds r into t and returns the new totals.
func (t Totals) Add(r FileResult) Totals {
	t.Blocks += r.BlocksRemoved
	t.Chars += r.CharsRemoved
	if r.ExtraLinesRemoved > 0 {
		t.FilesWithExtraLines++
		t.ExtraLines += r.ExtraLinesRemoved
	}
	return t
}

// SumResults reduces a set of results into fresh totals.
func SumResults(results []FileResult) Totals {
	var t Totals
	for _, r := range results {
		t = t.Add(r)
	}
	return t
}

// Summary returns the totals lines. Block and file qualifiers are only shown
// when more than one file was processed.
func (t Totals) Summary(fileCount int) []string {
	spaces := fmt.Sprintf("Removed spaces: %d", t.Chars)
	if fileCount != 1 {
		spaces += fmt.Sprintf(" in %d %s", t.Blocks, plural(t.Blocks, "block", "blocks"))
	}
	lines := []string{spaces}

	if t.FilesWithExtraLines > 0 {
		extra := fmt.Sprintf("Removed excessive end lines: %d", t.ExtraLines)
		if fileCount != 1 {
			extra += fmt.Sprintf(" from %d %s", t.FilesWithExtraLines, plural(t.FilesWithExtraLines, "file", "files"))
		}
		lines = append(lines, extra)
	}
	return lines
}

// FileMessages returns the per-file feedback for r, empty when nothing changed.
func FileMessages(r FileResult) []string {
	var msgs []string
	if r.CharsRemoved == 1 {
		msgs = append(msgs, "Removed 1 unnecessary space.")
	} else if r.CharsRemoved > 1 {
		msgs = append(msgs, fmt.Sprintf("Removed %d unnecessary spaces in %d %s.", r.CharsRemoved, r.BlocksRemoved, plural(r.BlocksRemoved, "block", "blocks")))
	}
	if r.ExtraLinesRemoved > 0 {
		msgs = append(msgs, fmt.Sprintf("Removed %d excessive extra %s at end of file", r.ExtraLinesRemoved, plural(r.ExtraLinesRemoved, "line", "lines")))
	}
	return msgs
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
