// Package pathcheck probes whether configured paths can be created and
// written to. Paths with a file extension are treated as files, everything
// else as a directory.
package pathcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// IsWritable reports whether path can be written. A permissions failure
// yields (false, nil); any other I/O failure propagates. File paths are
// probed by creating and removing a zero-byte file, directory paths by
// creating the directory tree.
func IsWritable(path string) (bool, error) {
	if filepath.Ext(path) != "" {
		return fileWritable(path)
	}
	return dirWritable(path)
}

func fileWritable(path string) (bool, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("create directory %q: %w", dir, err)
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("probe %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return false, err
	}
	// Only the probe file is removed; pre-existing files are left alone.
	if !existed {
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("remove probe %q: %w", path, err)
		}
	}
	return true, nil
}

func dirWritable(path string) (bool, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}
		return false, fmt.Errorf("create directory %q: %w", path, err)
	}
	return true, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
