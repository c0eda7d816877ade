// Package utils has small file system helpers.
package utils

import (
	"os"
	"path/filepath"
)

// ReadyDir creates the parent directory of filename
func ReadyDir(filename string) error {
	return os.MkdirAll(filepath.Dir(filename), os.FileMode(0755))
}

// SaveFile writes data to a temporary file next to filename and renames it
// into place, so readers never see a partial file.
func SaveFile(filename string, data []byte) error {
	if err := ReadyDir(filename); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err = f.Write(data); err == nil {
		err = f.Chmod(os.FileMode(0644))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, filename)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir reports whether fpath is a directory, following symlinks
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.IsDir()
}

// IsRegular reports whether fpath is a regular file, following symlinks
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}
