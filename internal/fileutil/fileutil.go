// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ErrNotDirectory is returned when a path that must be a directory is a file.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error; an existing file at dir is.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		// MkdirAll reports ENOTDIR as a plain PathError; surface it as a sentinel.
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return fmt.Errorf("%w: %w", ErrNotDirectory, err)
		}
		return err
	}
	return nil
}

// WriteFile writes data to path, truncating any existing content.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, FilePermissions) // #nosec G306 -- icon is meant to be world-readable
}

// ProbeWritable checks that a file can be created in dir by creating and
// removing a temporary file.
func ProbeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".genicon-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	closeErr := f.Close()
	removeErr := os.Remove(name)
	if closeErr != nil {
		return closeErr
	}
	return removeErr
}

// NearestExisting walks up from path and returns the first ancestor
// (or path itself) that exists.
func NearestExisting(path string) string {
	p := filepath.Clean(path)
	for {
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}

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
//   - "genicon" -> false (name)
//   - "./genicon.yaml" -> true (relative path)
//   - "/etc/genicon.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
