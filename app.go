package tasclean

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sokinpui/tasclean/internal/logging"
)

const usageHint = "Drag and drop the file/folder onto this program to clean up the file/files."

// IO bundles the streams an App talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type App struct {
	cfg         *Config
	lineBreak   LineBreak
	backup      BackupChoice
	streams     IO
	interactive bool
	reporter    *Reporter
	prompter    Prompter
	source      *SourceProvider
	fs          FileSystem
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }

func NewApp(cfg *Config, streams IO) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lb, _ := cfg.LineBreak()
	choice, _ := cfg.BackupChoice()

	if streams.In == nil {
		streams.In = os.Stdin
	}
	if streams.Out == nil {
		streams.Out = os.Stdout
	}
	if streams.Err == nil {
		streams.Err = os.Stderr
	}

	interactive := false
	if f, ok := streams.In.(*os.File); ok {
		interactive = isTerminal(f)
	}

	return &App{
		cfg:         cfg,
		lineBreak:   lb,
		backup:      choice,
		streams:     streams,
		interactive: interactive,
		reporter:    NewReporter(streams.Out),
		prompter:    TeaPrompter{In: streams.In, Out: streams.Out},
		source:      NewSourceProvider(nil),
	}, nil
}

func (a *App) SetPrompter(p Prompter) { a.prompter = p }

// SetInteractive overrides the terminal detection done on stdin.
func (a *App) SetInteractive(v bool) { a.interactive = v }

func (a *App) SetClipboard(c Clipboard) { a.source = NewSourceProvider(c) }

func (a *App) SetFileSystem(fs FileSystem) { a.fs = fs }

func (a *App) Execute(ctx context.Context) (rep RunReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()
	if a.cfg.Wait {
		defer waitForEnter(a.streams.In, a.streams.Out)
	}

	switch {
	case a.cfg.Stdin:
		return a.cleanStdin()
	case a.cfg.Clipboard:
		return a.cleanClipboard()
	case a.cfg.Target == "":
		a.reporter.Notice(usageHint)
		return RunReport{}, nil
	default:
		return a.cleanTarget(ctx)
	}
}

func (a *App) cleanTarget(ctx context.Context) (RunReport, error) {
	target, err := ResolveTarget(a.cfg.Target, a.cfg.Ext)
	if err != nil {
		return RunReport{}, err
	}
	logging.Info("cleaning target", "path", target.Path, "kind", target.Kind.String(), "eol", string(a.lineBreak))

	if a.cfg.Check {
		a.reporter.Notice("Check mode: no files will be written.")
	} else if err := a.maybeBackup(target); err != nil {
		return RunReport{}, err
	}

	paths := []string{target.Path}
	if target.Kind == TargetDir {
		a.reporter.OpeningFolder()
		if paths, err = FindScripts(target.Path, a.cfg.Ext); err != nil {
			return RunReport{}, err
		}
	}

	runner := NewRunner(NewCleaner(a.fs, a.lineBreak, a.cfg.Check), a.reporter, a.cfg.Jobs)
	rep, err := runner.Run(ctx, paths)
	a.reporter.Totals(rep)
	logging.Info("run finished", "files", rep.FileCount, "modified", rep.ModifiedCount(), "failed", len(rep.Failed), "chars", rep.Totals.Chars, "extraLines", rep.Totals.ExtraLines)
	if err != nil {
		return rep, err
	}
	return rep, a.outcome(rep)
}

func (a *App) outcome(rep RunReport) error {
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, len(rep.Failed), rep.FileCount)
	}
	if a.cfg.Check && rep.ModifiedCount() > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChangesNeeded, rep.ModifiedCount(), rep.FileCount)
	}
	return nil
}

func (a *App) maybeBackup(t Target) error {
	want, err := a.decideBackup()
	if err != nil {
		return err
	}
	if !want {
		return nil
	}

	dest, err := CreateBackup(t, a.cfg.Ext)
	if err != nil {
		return err
	}
	logging.Info("backup created", "path", dest)
	a.reporter.Notice("Backup created at " + dest)
	return nil
}

func (a *App) decideBackup() (bool, error) {
	switch a.backup {
	case BackupYes:
		return true, nil
	case BackupNo:
		return false, nil
	}

	if !a.interactive {
		logging.Warn("stdin is not a terminal, skipping backup prompt")
		a.reporter.Notice("No terminal to ask about a backup; continuing without one.")
		return false, nil
	}
	return a.prompter.ConfirmBackup()
}

func (a *App) cleanStdin() (RunReport, error) {
	res, err := a.source.CleanStream(a.streams.In, a.streams.Out, a.lineBreak)
	if err != nil {
		return RunReport{}, err
	}
	rep := singleReport(res)
	NewReporter(a.streams.Err).Totals(rep)
	return rep, a.outcome(rep)
}

func (a *App) cleanClipboard() (RunReport, error) {
	a.reporter.Checking("clipboard")
	res, err := a.source.CleanClipboard(a.lineBreak, a.cfg.Check)
	if err != nil {
		return RunReport{}, err
	}
	a.reporter.File(res)
	rep := singleReport(res)
	a.reporter.Totals(rep)
	return rep, a.outcome(rep)
}

func singleReport(res FileResult) RunReport {
	return RunReport{
		Totals:    Totals{}.Add(res),
		FileCount: 1,
		Results:   []FileResult{res},
	}
}
