package tasclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "crlf", cfg.EOL)
	assert.Equal(t, ".tas", cfg.Ext)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Empty(t, cfg.Backup)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TASCLEAN_EOL", "lf")
	t.Setenv("TASCLEAN_EXT", "txt")
	t.Setenv("TASCLEAN_JOBS", "4")
	t.Setenv("TASCLEAN_BACKUP", "no")
	t.Setenv("TASCLEAN_DEBUG", "true")
	t.Setenv("TASCLEAN_LOG_FILE", "/tmp/tasclean.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "lf", cfg.EOL)
	assert.Equal(t, ".txt", cfg.Ext)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/tasclean.log", cfg.LogFile)

	choice, err := cfg.BackupChoice()
	require.NoError(t, err)
	assert.Equal(t, BackupNo, choice)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("TASCLEAN_JOBS", "many")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestBackupChoice(t *testing.T) {
	tests := []struct {
		in      string
		want    BackupChoice
		wantErr bool
	}{
		{"", BackupAsk, false},
		{"ask", BackupAsk, false},
		{"true", BackupYes, false},
		{"1", BackupYes, false},
		{"false", BackupNo, false},
		{"maybe", BackupAsk, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := (&Config{Backup: tt.in}).BackupChoice()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config { return Config{EOL: "crlf", Ext: ".tas", Jobs: 1} }

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad eol", func(c *Config) { c.EOL = "cr" }, "line break"},
		{"bad backup", func(c *Config) { c.Backup = "perhaps" }, "backup"},
		{"empty ext", func(c *Config) { c.Ext = "" }, "extension"},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }, "jobs"},
		{"stdin and clipboard", func(c *Config) { c.Stdin, c.Clipboard = true, true }, "mutually exclusive"},
		{"stdin with path", func(c *Config) { c.Stdin, c.Target = true, "x.tas" }, "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
