package tasclean

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes the colored console feedback for a run.
type Reporter struct {
	w io.Writer

	checkingStyle lipgloss.Style
	removedStyle  lipgloss.Style
	headerStyle   lipgloss.Style
	totalStyle    lipgloss.Style
	noticeStyle   lipgloss.Style
	errorStyle    lipgloss.Style
}

// NewReporter styles output for w; colors are dropped when w is not a terminal.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:             w,
		checkingStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
		removedStyle:  r.NewStyle().Foreground(lipgloss.Color("78")),
		headerStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		totalStyle:    r.NewStyle().Foreground(lipgloss.Color("15")),
		noticeStyle:   r.NewStyle().Foreground(lipgloss.Color("63")),
		errorStyle:    r.NewStyle().Foreground(lipgloss.Color("197")),
	}
}

func (r *Reporter) line(style lipgloss.Style, s string) {
	fmt.Fprintln(r.w, style.Render(s))
}

func (r *Reporter) Notice(msg string) {
	r.line(r.noticeStyle, msg)
}

func (r *Reporter) OpeningFolder() {
	r.line(r.totalStyle, "Opening given folder.")
	fmt.Fprintln(r.w)
}

func (r *Reporter) Checking(path string) {
	r.line(r.checkingStyle, "Checking "+filepath.Base(path))
}

// File prints the removals for one file followed by a blank line.
func (r *Reporter) File(res FileResult) {
	for _, msg := range FileMessages(res) {
		r.line(r.removedStyle, msg)
	}
	fmt.Fprintln(r.w)
}

func (r *Reporter) Failed(fe *FileError) {
	r.line(r.errorStyle, fmt.Sprintf("Failed %s: could not %s file: %v", filepath.Base(fe.Path), fe.Op, fe.Err))
	fmt.Fprintln(r.w)
}

// Totals prints the run summary and the list of files that failed.
func (r *Reporter) Totals(rep RunReport) {
	r.line(r.headerStyle, "Totals:")
	for _, l := range rep.Totals.Summary(rep.FileCount) {
		r.line(r.totalStyle, l)
	}

	if len(rep.Failed) == 0 {
		return
	}
	r.line(r.errorStyle, "Failed:")
	for _, fe := range rep.Failed {
		fmt.Fprintf(r.w, "  %s\n", fe.Path)
	}
}
