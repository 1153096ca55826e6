package tasclean

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, cfg *Config, args ...string) (string, error) {
	t.Helper()
	if cfg == nil {
		cfg = &Config{EOL: "crlf", Ext: ".tas", Jobs: 1}
	}
	cmd := NewRootCmd(cfg)

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return plain(out.String()), err
}

func TestCLICleansFolder(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.tas", "a \r\n\r\n\r\n")
	writeScript(t, dir, "b.tas", "b\t\r\n")

	out, err := runCLI(t, nil, "--no-backup", "--jobs", "2", dir)
	require.NoError(t, err)
	assert.Equal(t, "a\r\n", readFile(t, a))
	assert.Contains(t, out, "Removed spaces: 2 in 2 blocks")
	assert.Contains(t, out, "Removed excessive end lines: 2 from 1 file")
}

func TestCLIFlagsOverrideEnvConfig(t *testing.T) {
	path := writeScript(t, t.TempDir(), "run.tas", "a\n\n\n")

	cfg := &Config{EOL: "crlf", Ext: ".tas", Jobs: 1, Backup: "yes"}
	_, err := runCLI(t, cfg, "--eol", "lf", "--no-backup", path)
	require.NoError(t, err)

	assert.Equal(t, "a\n", readFile(t, path))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), "run - BACKUP.tas"))
}

func TestCLICheck(t *testing.T) {
	path := writeScript(t, t.TempDir(), "run.tas", "a \r\n")

	_, err := runCLI(t, nil, "--check", path)
	assert.ErrorIs(t, err, ErrChangesNeeded)
	assert.Equal(t, "a \r\n", readFile(t, path))
}

func TestCLIErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"backup flags conflict", []string{"--backup", "--no-backup", dir}, "mutually exclusive"},
		{"too many args", []string{dir, dir}, "accepts at most 1 arg"},
		{"bad eol", []string{"--eol", "cr", dir}, "line break"},
		{"stdin with path", []string{"--stdin", dir}, "cannot be combined"},
		{"bad completion shell", []string{"--completion", "tcsh"}, "unsupported shell"},
		{"invalid target", []string{"--no-backup", filepath.Join(dir, "x.txt")}, "invalid target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCLICompletion(t *testing.T) {
	out, err := runCLI(t, nil, "--completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "tasclean")
}

func TestCLIDebugLogFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "run.tas", "a \r\n")
	logPath := filepath.Join(dir, "tasclean.log")

	_, err := runCLI(t, nil, "--no-backup", "--debug", "--log-file", logPath, path)
	require.NoError(t, err)

	log := readFile(t, logPath)
	assert.Contains(t, log, "cleaning target")
	assert.Contains(t, log, "cleaned text")
}
