package tasclean

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Clipboard is the subset of clipboard access used by the clipboard source.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SourceProvider cleans text that does not live in a script file.
type SourceProvider struct {
	clip Clipboard
}

func NewSourceProvider(clip Clipboard) *SourceProvider {
	if clip == nil {
		clip = systemClipboard{}
	}
	return &SourceProvider{clip: clip}
}

// CleanStream copies in to out with the cleaning rules applied.
func (sp *SourceProvider) CleanStream(in io.Reader, out io.Writer, lb LineBreak) (FileResult, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return FileResult{}, fmt.Errorf("reading stdin: %w", err)
	}

	cleaned, res := CleanString(string(data), lb)
	res.Path = "stdin"
	if _, err := io.WriteString(out, cleaned); err != nil {
		return FileResult{}, fmt.Errorf("writing stdout: %w", err)
	}
	return res, nil
}

// CleanClipboard rewrites the clipboard only when cleaning changed it.
func (sp *SourceProvider) CleanClipboard(lb LineBreak, dryRun bool) (FileResult, error) {
	text, err := sp.clip.ReadAll()
	if err != nil {
		return FileResult{}, fmt.Errorf("reading clipboard: %w", err)
	}

	cleaned, res := CleanString(text, lb)
	res.Path = "clipboard"
	if !res.Modified || dryRun {
		return res, nil
	}
	if err := sp.clip.WriteAll(cleaned); err != nil {
		return FileResult{}, fmt.Errorf("writing clipboard: %w", err)
	}
	return res, nil
}
