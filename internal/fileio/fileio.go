// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package fileio reads and writes whole files for the command line tool.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrInputUnreadable is returned when the source cannot be opened or read.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrOutputUnwritable is returned when the destination cannot be written.
	ErrOutputUnwritable = errors.New("output unwritable")
)

// ReadAll returns the contents of the file at path.
// A missing file still matches os.ErrNotExist through the returned error.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	return data, nil
}

// WriteAll replaces the file at path with data. The data is written to a
// temporary file in the same directory and renamed into place, so a failed
// write never leaves a partial file at path. The file gets perm even when it
// replaces an existing file with other permissions.
func WriteAll(path string, data []byte, perm os.FileMode) error {
	if err := replaceFile(path, data, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	return nil
}

// WriteNew creates the file at path with data, failing with an error matching
// os.ErrExist if something is already there. The complete temporary file is
// hard linked into place, so the existence check and the creation are one
// step. It needs a file system that supports hard links.
func WriteNew(path string, data []byte, perm os.FileMode) error {
	tmp, err := writeTemp(path, data, perm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	defer os.Remove(tmp)
	if err := os.Link(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	return nil
}

// Exists reports whether something is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// writeTemp writes data to a new file next to path and returns its name.
// Nothing is left behind on failure.
func writeTemp(path string, data []byte, perm os.FileMode) (name string, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return "", err
	}
	if err = f.Sync(); err != nil {
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(f.Name(), perm); err != nil {
		return "", err
	}
	return f.Name(), nil
}
