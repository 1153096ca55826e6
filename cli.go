package tasclean

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sokinpui/tasclean/internal/logging"
)

type cliFlags struct {
	Backup     bool
	NoBackup   bool
	Completion string
}

// NewRootCmd builds the tasclean command. Flag defaults come from cfg, so
// values loaded from the environment are overridden by explicit flags.
func NewRootCmd(cfg *Config) *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "tasclean [file.tas | folder]",
		Short: "Strip trailing whitespace and extra end lines from .tas scripts.",
		Long: `Strip trailing spaces and tabs from every line of a .tas script, and
collapse excessive blank lines at the end of the file into one.

Give a single .tas file or a folder, which is searched recursively.

Example: tasclean --backup ./tas`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Completion != "" {
				return handleCompletion(cmd, flags.Completion)
			}

			if flags.Backup && flags.NoBackup {
				return fmt.Errorf("error: --backup and --no-backup are mutually exclusive")
			}
			if flags.Backup {
				cfg.Backup = "true"
			}
			if flags.NoBackup {
				cfg.Backup = "false"
			}
			if len(args) == 1 {
				cfg.Target = args[0]
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logging.SetGlobal(logger)
			defer func() {
				logger.Close()
				logging.SetGlobal(nil)
			}()

			app, err := NewApp(cfg, IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			_, err = app.Execute(cmd.Context())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Completion, "completion", "", "Generate completion script")
	f.BoolVar(&flags.Backup, "backup", false, "Back up the target before cleaning without asking")
	f.BoolVar(&flags.NoBackup, "no-backup", false, "Clean without a backup and without asking")
	f.BoolVarP(&cfg.Check, "check", "c", cfg.Check, "Report what would change and exit 1 if anything would; write nothing")
	f.StringVar(&cfg.EOL, "eol", cfg.EOL, "Line break collapsed at end of file: crlf, lf or auto")
	f.StringVarP(&cfg.Ext, "ext", "e", cfg.Ext, "Script file extension searched in folders")
	f.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of files cleaned concurrently")
	f.BoolVarP(&cfg.Wait, "wait", "w", cfg.Wait, "Wait for enter before exiting")
	f.BoolVar(&cfg.Stdin, "stdin", cfg.Stdin, "Clean stdin and write the result to stdout")
	f.BoolVar(&cfg.Clipboard, "clipboard", cfg.Clipboard, "Clean the clipboard contents in place")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log debug output")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

func newLogger(cfg *Config, stderr io.Writer) (logging.Logger, error) {
	switch {
	case cfg.LogFile != "":
		return logging.NewFile(cfg.LogFile, cfg.Debug)
	case cfg.Debug:
		return logging.NewText(stderr, true), nil
	default:
		return logging.Nop(), nil
	}
}

func handleCompletion(cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", shell)
	}
}

func Execute() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd(cfg).ExecuteContext(ctx)
}
