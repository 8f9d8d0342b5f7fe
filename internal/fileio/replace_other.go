// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows
// +build !windows

package fileio

import (
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile atomically replaces path through renameio. The permissions of
// an existing file are not carried over.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	t, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return err
	}
	defer t.Cleanup()
	if _, err := t.Write(data); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
