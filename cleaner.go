package tasclean

import (
	"os"
	"path/filepath"

	"github.com/sokinpui/tasclean/internal/logging"
)

// FileSystem is the file access the cleaner needs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// WriteFile replaces an existing file through a temp file in the same
// directory, so a failed write leaves the original untouched. The mode is kept.
func (osFS) WriteFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// CleanString applies trailing space removal and then trailing blank line
// collapsing. Trimming runs first so lines it empties can be collapsed.
func CleanString(text string, lb LineBreak) (string, FileResult) {
	trimmed, stats := TrimTrailingSpace(text)
	collapsed, extra := CollapseTrailingBreaks(trimmed, lb.Sequence(trimmed))

	return collapsed, FileResult{
		BlocksRemoved:     stats.Blocks,
		CharsRemoved:      stats.Chars,
		ExtraLinesRemoved: extra,
		Modified:          stats.Chars > 0 || extra > 0,
	}
}

// Cleaner cleans script files on a FileSystem.
type Cleaner struct {
	fs        FileSystem
	lineBreak LineBreak
	dryRun    bool
}

func NewCleaner(fs FileSystem, lb LineBreak, dryRun bool) *Cleaner {
	if fs == nil {
		fs = osFS{}
	}
	return &Cleaner{fs: fs, lineBreak: lb, dryRun: dryRun}
}

// CleanFile reads path, cleans it and writes it back only when something
// changed. On a write failure the result is discarded.
func (c *Cleaner) CleanFile(path string) (FileResult, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return FileResult{Path: path}, &FileError{Path: path, Op: "read", Err: err}
	}

	cleaned, res := CleanString(string(data), c.lineBreak)
	res.Path = path
	logging.Debug("cleaned text", "path", path, "blocks", res.BlocksRemoved, "chars", res.CharsRemoved, "extraLines", res.ExtraLinesRemoved)

	if !res.Modified || c.dryRun {
		return res, nil
	}

	if err := c.fs.WriteFile(path, []byte(cleaned)); err != nil {
		return FileResult{Path: path}, &FileError{Path: path, Op: "write", Err: err}
	}
	return res, nil
}
