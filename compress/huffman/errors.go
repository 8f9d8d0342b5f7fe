// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyInput is returned when compressing zero bytes.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrCorruptHeader is matched by every CorruptHeaderError.
	ErrCorruptHeader = errors.New("huffman: corrupt header")
	// ErrTruncatedStream is returned when the packed bits end before the
	// declared number of symbols has been decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")
	// ErrInputTooLarge is returned when a symbol occurs more often than the
	// header's 32-bit count field can hold.
	ErrInputTooLarge = errors.New("huffman: input too large")
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("huffman: writer is closed")
)

// A CorruptHeaderError reports an invalid header at the given byte offset.
type CorruptHeaderError int64

func (e CorruptHeaderError) Error() string {
	return "huffman: corrupt header at offset " + strconv.FormatInt(int64(e), 10)
}

// Is makes errors.Is(err, ErrCorruptHeader) hold for any CorruptHeaderError.
func (e CorruptHeaderError) Is(target error) bool {
	return target == ErrCorruptHeader
}
