// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

func opticks(t testing.TB) (data []byte) {
	data, _ = os.ReadFile(filepath.Join(runtime.GOROOT(), "src", "testdata", "Isaac.Newton-Opticks.txt"))
	if data == nil {
		t.Skip("skip for no test data file")
	}
	return data
}

func samples() map[string][]byte {
	random := make([]byte, 4096)
	rand.Read(random)
	all := make([]byte, 256*3)
	for i := range all {
		all[i] = byte(i)
	}
	return map[string][]byte{
		"one byte":     {0x7f},
		"single":       []byte("aaaa"),
		"two symbols":  []byte("abababababbbbbbb"),
		"concrete":     []byte("aaabbc"),
		"text":         []byte("the quick brown fox jumps over the lazy dog"),
		"zeros":        make([]byte, 1000),
		"all symbols":  all,
		"random":       random,
		"binary edges": {0x00, 0xff, 0x00, 0xff, 0x80, 0x01},
	}
}

func TestRoundTrip(t *testing.T) {
	for name, src := range samples() {
		t.Run(name, func(t *testing.T) {
			compressed, err := Compress(src)
			require.NoError(t, err)
			data, err := Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, src, data)
		})
	}
}

func TestRoundTripOpticks(t *testing.T) {
	testdata := opticks(t)
	for size := 1; size < 128*1024; size *= 2 {
		for _, offset := range []int{0, 1, 3, 5, 7, 9, 17} {
			offsetSize := size + offset
			if len(testdata) < offsetSize {
				break
			}
			source := testdata[:offsetSize]
			compressed, err := Compress(source)
			if err != nil {
				t.Fatal(err, len(source))
			}
			data, err := Decompress(compressed)
			if err != nil {
				t.Fatal(err, len(source), len(data))
			}
			if !bytes.Equal(data, source) {
				t.Fatalf("excepted data is the same, but failed. data_len:%d, source_len:%d, diff:%d", len(data), len(source), diff(data, source))
			}
		}
	}
}

func diff(d, s []byte) (pos int) {
	pos = -1
	for i := 0; i < len(d) && i < len(s); i++ {
		if d[i] != s[i] {
			pos = i
			break
		}
	}
	return
}

func TestDeterministic(t *testing.T) {
	for name, src := range samples() {
		a, err := Compress(src)
		require.NoError(t, err, name)
		b, err := Compress(append([]byte(nil), src...))
		require.NoError(t, err, name)
		require.Equal(t, a, b, name)
	}
}

func TestAppendCompress(t *testing.T) {
	prefix := []byte("prefix")
	src := []byte("abracadabra")
	out, err := AppendCompress(prefix, src)
	require.NoError(t, err)
	require.Equal(t, prefix, out[:len(prefix)])

	plain, err := Compress(src)
	require.NoError(t, err)
	require.Equal(t, plain, out[len(prefix):])
}

func TestAppendCompressInPlace(t *testing.T) {
	src := []byte("abracadabra")
	plain, err := Compress(src)
	require.NoError(t, err)

	dst := make([]byte, 3, 3+len(plain))
	copy(dst, "pre")
	out, err := AppendCompress(dst, src)
	require.NoError(t, err)
	require.Equal(t, plain, out[3:])
	require.Equal(t, cap(dst), cap(out))
	require.Same(t, &dst[0], &out[0], "spare capacity of dst is reused")

	// too small: dst is left untouched
	small := make([]byte, 3, 4)
	copy(small, "pre")
	out, err = AppendCompress(small, src)
	require.NoError(t, err)
	require.Equal(t, []byte("pre"), small)
	require.Equal(t, plain, out[3:])
}

func TestHeaderAccuracy(t *testing.T) {
	for name, src := range samples() {
		compressed, err := Compress(src)
		require.NoError(t, err, name)
		h, err := ReadHeader(compressed)
		require.NoError(t, err, name)
		require.Equal(t, uint64(len(src)), h.Total(), name)

		freq := tree.Count(src)
		require.Len(t, h.Entries, freq.Len(), name)
		for _, e := range h.Entries {
			require.Equal(t, freq.Count(e.Symbol), uint64(e.Count), name)
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	src := []byte("aaabbc")
	compressed, err := Compress(src)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0, 0, 0, 3,
		'a', 0, 0, 0, 3,
		'b', 0, 0, 0, 2,
		'c', 0, 0, 0, 1,
		0b00011111, 0b00000000,
	}, compressed)

	data, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, src, data)
}

func TestSingleSymbol(t *testing.T) {
	compressed, err := Compress([]byte("aaaa"))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1, 'a', 0, 0, 0, 4, 0x00}, compressed)
	data, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, []byte("aaaa"), data)
}

func TestEmptyInput(t *testing.T) {
	_, err := Compress(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	_, err = Compress([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestPaddingTolerance(t *testing.T) {
	for name, src := range samples() {
		compressed, err := Compress(src)
		require.NoError(t, err, name)
		for _, tail := range [][]byte{{0}, make([]byte, 7), make([]byte, 64)} {
			data, err := Decompress(append(append([]byte(nil), compressed...), tail...))
			require.NoError(t, err, name)
			require.Equal(t, src, data, name)
		}
	}
}

func TestTruncatedStream(t *testing.T) {
	src := opticksOr(t, []byte("the quick brown fox jumps over the lazy dog"))
	compressed, err := Compress(src)
	require.NoError(t, err)
	h, err := ReadHeader(compressed)
	require.NoError(t, err)

	for _, cut := range []int{1, 2, len(compressed) - h.Size} {
		_, err = Decompress(compressed[:len(compressed)-cut])
		require.ErrorIs(t, err, ErrTruncatedStream, "cut %d", cut)
	}
}

func opticksOr(t *testing.T, fallback []byte) []byte {
	data, _ := os.ReadFile(filepath.Join(runtime.GOROOT(), "src", "testdata", "Isaac.Newton-Opticks.txt"))
	if data == nil {
		return fallback
	}
	return data[:16*1024]
}

func TestCorruptHeader(t *testing.T) {
	valid, err := Compress([]byte("aaabbc"))
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":          nil,
		"short count":    {0, 0, 1},
		"zero symbols":   {0, 0, 0, 0, 0xff},
		"too many":       {0, 0, 0x01, 0x01},
		"negative count": {0xff, 0xff, 0xff, 0xff},
		"short entries":  valid[:10],
		"zero frequency": {0, 0, 0, 1, 'a', 0, 0, 0, 0, 0xff},
		"duplicate":      {0, 0, 0, 2, 'a', 0, 0, 0, 1, 'a', 0, 0, 0, 1, 0xff},
		"descending":     {0, 0, 0, 2, 'b', 0, 0, 0, 1, 'a', 0, 0, 0, 1, 0xff},
	}
	for name, src := range cases {
		_, err := Decompress(src)
		require.ErrorIs(t, err, ErrCorruptHeader, name)
		var offErr CorruptHeaderError
		require.True(t, errors.As(err, &offErr), name)
	}
}

func TestCompressionShrinksText(t *testing.T) {
	src := bytes.Repeat([]byte("aaaaaaaabbbbccd "), 512)
	compressed, err := Compress(src)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(src)/2)
}
