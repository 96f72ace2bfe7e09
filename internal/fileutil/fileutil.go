// Package fileutil provides the file operations of a site build: resetting
// the output directory, copying the static tree, and writing pages.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrUnsafeReset  = errors.New("refusing to reset directory")
)

// Permissions for created directories and files.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "C:\site\style.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like inline CSS rather than a name.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// ResetDir removes dir and everything below it, then recreates it empty.
// The filesystem root and the working directory are never removed.
func ResetDir(dir string) error {
	clean := filepath.Clean(dir)
	if dir == "" || clean == "." || clean == string(filepath.Separator) || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeReset, dir)
	}
	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("removing %s: %w", clean, err)
	}
	if err := os.MkdirAll(clean, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", clean, err)
	}
	return nil
}

// CopyTree copies every file under src into dst, recreating the directory
// structure. Existing files in dst are overwritten. Symlinks are skipped.
// Returns the number of files copied.
func CopyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, DirPerm)
		case d.Type().IsRegular():
			if err := copyFile(path, target); err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return copied, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from walking the static dir
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304 -- path under the output dir
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil { // #nosec G306 -- site pages are world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
