// Package fsutil provides small file-system helpers: device and mount
// point queries, temporary download directories and random file names.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// SameDevice reports whether two files or directories reside on the
// same device (partition).
func SameDevice(file1, file2 string) (bool, error) {
	var stat1, stat2 unix.Stat_t
	if err := unix.Stat(file1, &stat1); err != nil {
		return false, fmt.Errorf("cannot stat %s: %w", file1, err)
	}
	if err := unix.Stat(file2, &stat2); err != nil {
		return false, fmt.Errorf("cannot stat %s: %w", file2, err)
	}
	return stat1.Dev == stat2.Dev, nil
}

// isMount reports whether path is a mount point: its device differs
// from its parent's, or it is the root directory.
func isMount(path string) (bool, error) {
	parent := filepath.Dir(path)
	if parent == path {
		return true, nil
	}
	same, err := SameDevice(path, parent)
	if err != nil {
		return false, err
	}
	return !same, nil
}

// MountPoint finds the mount point of a path. Symlinks are resolved
// first; non-existent trailing components are walked past, so e.g. a
// crazy path under / resolves to /.
func MountPoint(path string) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		if eval, err := filepath.EvalSymlinks(resolved); err == nil {
			resolved = eval
			break
		}
		parent := filepath.Dir(resolved)
		if parent == resolved {
			break
		}
		resolved = parent
	}

	for {
		mount, err := isMount(resolved)
		if err != nil {
			return "", err
		}
		if mount {
			return resolved, nil
		}
		resolved = filepath.Dir(resolved)
	}
}

// ExistingParent locates the first ancestor directory that exists for
// a given path.
func ExistingParent(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for parent := filepath.Dir(abs); ; parent = filepath.Dir(parent) {
		info, err := os.Stat(parent)
		if err == nil && info.IsDir() {
			return parent, nil
		}
		if parent == filepath.Dir(parent) {
			return "", fmt.Errorf("no existing parent for %s", path)
		}
	}
}
