package tasclean

import (
	"context"
	"io"
	"strings"
)

// Clean runs a non-interactive clean of path with cfg and discards the
// console output. A backup is only made when cfg asks for one explicitly.
func Clean(ctx context.Context, path string, cfg Config) (RunReport, error) {
	cfg.Target = path
	cfg.Stdin, cfg.Clipboard, cfg.Wait = false, false, false
	if cfg.EOL == "" {
		cfg.EOL = string(LineBreakCRLF)
	}
	if cfg.Ext == "" {
		cfg.Ext = ".tas"
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}
	if choice, err := cfg.BackupChoice(); err == nil && choice == BackupAsk {
		cfg.Backup = "false"
	}

	app, err := NewApp(&cfg, IO{In: strings.NewReader(""), Out: io.Discard, Err: io.Discard})
	if err != nil {
		return RunReport{}, err
	}
	return app.Execute(ctx)
}
