// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows
// +build windows

package fileio

import "os"

// replaceFile writes a temporary file and renames it over path.
// renameio does not support windows; os.Rename replaces the destination
// with MoveFileEx(MOVEFILE_REPLACE_EXISTING).
func replaceFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
