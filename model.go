package tasclean

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTarget = errors.New("invalid target")
	ErrBackup        = errors.New("backup failed")
	ErrAborted       = errors.New("aborted")
	ErrChangesNeeded = errors.New("files need cleaning")
	ErrFilesFailed   = errors.New("some files could not be cleaned")
)

// FileResult describes what cleaning removed from one text.
type FileResult struct {
	Path              string
	BlocksRemoved     int
	CharsRemoved      int
	ExtraLinesRemoved int
	Modified          bool
}

type TargetKind int

const (
	TargetFile TargetKind = iota
	TargetDir
)

func (k TargetKind) String() string {
	if k == TargetDir {
		return "directory"
	}
	return "file"
}

type Target struct {
	Path string
	Kind TargetKind
}

// FileError records which step failed for which file.
type FileError struct {
	Path string
	Op   string // "read" or "write"
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// RunReport is everything a finished run has to show.
type RunReport struct {
	Totals    Totals
	FileCount int
	Results   []FileResult
	Failed    []*FileError
}

// ModifiedCount returns how many files were (or in check mode, would be) rewritten.
func (r RunReport) ModifiedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Modified {
			n++
		}
	}
	return n
}
