package tasclean

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const BackupMarker = " - BACKUP"

// NormalizeExt lowercases ext and makes sure it starts with a dot.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

func hasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// FindScripts lists every regular file below root with extension ext, in
// the order WalkDir visits them (lexical within each directory).
func FindScripts(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && hasExt(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// ResolveTarget decides whether path is a directory to walk or a single
// script file. The returned path is absolute so "." gets a sibling backup.
func ResolveTarget(path, ext string) (Target, error) {
	clean, err := filepath.Abs(path)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %s: %v", ErrInvalidTarget, path, err)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %s: %v", ErrInvalidTarget, path, err)
	}

	switch {
	case info.IsDir():
		return Target{Path: clean, Kind: TargetDir}, nil
	case info.Mode().IsRegular() && hasExt(clean, ext):
		return Target{Path: clean, Kind: TargetFile}, nil
	default:
		return Target{}, fmt.Errorf("%w: %s is neither a directory nor a %s file", ErrInvalidTarget, path, ext)
	}
}

// BackupPath inserts the backup marker before the extension of a file, or
// after the name of a directory.
func BackupPath(t Target, ext string) string {
	if t.Kind == TargetFile && hasExt(t.Path, ext) {
		fileExt := filepath.Ext(t.Path)
		return strings.TrimSuffix(t.Path, fileExt) + BackupMarker + fileExt
	}
	return t.Path + BackupMarker
}

// CreateBackup copies the target next to itself and returns the copy's path.
// An old directory backup is replaced as a whole.
func CreateBackup(t Target, ext string) (string, error) {
	dest := BackupPath(t, ext)

	if t.Kind == TargetFile {
		if err := copyFile(t.Path, dest); err != nil {
			return "", fmt.Errorf("%w: %v", ErrBackup, err)
		}
		return dest, nil
	}

	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("%w: removing old backup: %v", ErrBackup, err)
	}
	if err := copyTree(t.Path, dest); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackup, err)
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyTree never descends into dest, even when dest lies inside src.
func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if filepath.Clean(path) == filepath.Clean(dest) {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm()|0700)
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil
		}
	})
}
