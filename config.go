package tasclean

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v10"
)

const EnvPrefix = "TASCLEAN_"

type BackupChoice int

const (
	BackupAsk BackupChoice = iota
	BackupYes
	BackupNo
)

// Config holds the settings for one invocation. Fields with an env tag can be
// set through TASCLEAN_* variables; command line flags take precedence.
type Config struct {
	EOL     string `env:"EOL" envDefault:"crlf"`
	Ext     string `env:"EXT" envDefault:".tas"`
	Jobs    int    `env:"JOBS" envDefault:"1"`
	Backup  string `env:"BACKUP"` // empty or "ask" prompts, otherwise yes/no or a boolean
	Debug   bool   `env:"DEBUG"`
	LogFile string `env:"LOG_FILE"`

	Check     bool
	Wait      bool
	Stdin     bool
	Clipboard bool
	Target    string
}

// LoadConfig reads the environment on top of the defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) LineBreak() (LineBreak, error) {
	return ParseLineBreak(c.EOL)
}

func (c *Config) BackupChoice() (BackupChoice, error) {
	v := strings.ToLower(strings.TrimSpace(c.Backup))
	if v == "" || v == "ask" {
		return BackupAsk, nil
	}
	switch v {
	case "y", "yes":
		return BackupYes, nil
	case "n", "no":
		return BackupNo, nil
	}
	yes, err := strconv.ParseBool(v)
	if err != nil {
		return BackupAsk, fmt.Errorf("invalid backup setting %q (want ask, yes or no)", c.Backup)
	}
	if yes {
		return BackupYes, nil
	}
	return BackupNo, nil
}

// Validate normalizes the extension and rejects settings a run cannot use.
func (c *Config) Validate() error {
	if _, err := c.LineBreak(); err != nil {
		return err
	}
	if _, err := c.BackupChoice(); err != nil {
		return err
	}

	c.Ext = NormalizeExt(c.Ext)
	if c.Ext == "" || c.Ext == "." {
		return fmt.Errorf("extension must not be empty")
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Stdin && c.Clipboard {
		return fmt.Errorf("--stdin and --clipboard are mutually exclusive")
	}
	if (c.Stdin || c.Clipboard) && c.Target != "" {
		return fmt.Errorf("a path cannot be combined with --stdin or --clipboard")
	}
	return nil
}
