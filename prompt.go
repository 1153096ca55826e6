package tasclean

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const backupQuestion = "Backup files just in case? It will be placed in the same directory as this target file."

// Prompter asks the user whether to back up before cleaning.
type Prompter interface {
	ConfirmBackup() (bool, error)
}

type confirmModel struct {
	question string
	answered bool
	answer   bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.answered, m.answer = true, true
		return m, tea.Quit
	case "n":
		m.answered, m.answer = true, false
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.question + "\ny/n: ")
	if m.answered {
		if m.answer {
			b.WriteString("y")
		} else {
			b.WriteString("n")
		}
	}
	if m.answered || m.aborted {
		b.WriteString("\n")
	}
	return b.String()
}

// TeaPrompter runs the y/n question as a small bubbletea program.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p TeaPrompter) ConfirmBackup() (bool, error) {
	prog := tea.NewProgram(confirmModel{question: backupQuestion}, tea.WithInput(p.In), tea.WithOutput(p.Out))
	final, err := prog.Run()
	if err != nil {
		return false, fmt.Errorf("backup prompt: %w", err)
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// waitForEnter blocks until a line (or EOF) is read from in.
func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "\nPress enter to close.")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
