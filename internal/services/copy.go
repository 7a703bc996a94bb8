package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var errSameFile = errors.New("source and destination are the same file")

// readDir is swapped in tests to simulate unreadable folders
var readDir = os.ReadDir

// copyFile copies src to dst, replacing dst if present, and carries over
// the permission bits and modification time of src.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}
	// truncating dst would empty src when both resolve to one file
	if dstInfo, statErr := os.Stat(dst); statErr == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("%w: %s and %s", errSameFile, src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return err
	}
	if err = out.Chmod(info.Mode().Perm()); err != nil {
		return err
	}

	mtime := info.ModTime()
	return os.Chtimes(dst, mtime, mtime)
}

// listRegularFiles returns the names of regular files in dir accepted by
// keep, in directory order. Symlinks count when they point at a file.
func listRegularFiles(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if keep != nil && !keep(entry.Name()) {
			continue
		}
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			target, statErr := os.Stat(filepath.Join(dir, entry.Name()))
			if statErr == nil && target.Mode().IsRegular() {
				names = append(names, entry.Name())
			}
		}
	}
	return names, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
