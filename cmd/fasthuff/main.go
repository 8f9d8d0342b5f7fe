// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Command fasthuff compresses and decompresses files with the huffman codec.
//
//	fasthuff [flags] <compress|decompress> <input> <output>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/intel/fasthuff/compress/huffman"
	"github.com/intel/fasthuff/internal/config"
	"github.com/intel/fasthuff/internal/fileio"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: fasthuff [flags] <compress|decompress> <input> <output>\n")
	fmt.Fprintf(w, "  compress:   encode <input> into <output>\n")
	fmt.Fprintf(w, "  decompress: decode <input> into <output>\n")
	fmt.Fprintf(w, "Run 'fasthuff -h' for the list of flags.\n")
}

func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "fasthuff: ", 0)

	conf, rest, err := config.Parse("fasthuff", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr)
		return exitUsage
	}
	if err != nil {
		logger.Println(err)
		return exitUsage
	}
	if len(rest) != 3 {
		usage(stderr)
		return exitUsage
	}

	var action func([]byte) ([]byte, error)
	mode, input, output := rest[0], rest[1], rest[2]
	switch mode {
	case "compress":
		action = huffman.Compress
	case "decompress":
		action = huffman.Decompress
	default:
		logger.Printf("unknown mode %q", mode)
		usage(stderr)
		return exitUsage
	}

	if conf.NoClobber && fileio.Exists(output) {
		logger.Printf("%s already exists", output)
		return exitError
	}

	src, err := fileio.ReadAll(input)
	if err != nil {
		logger.Println(err)
		return exitError
	}
	dst, err := action(src)
	if err != nil {
		logger.Printf("%s %s: %v", mode, input, err)
		return exitError
	}
	write := fileio.WriteAll
	if conf.NoClobber {
		// output may have appeared while the input was being coded
		write = fileio.WriteNew
	}
	if err := write(output, dst, os.FileMode(conf.FileMode).Perm()); err != nil {
		logger.Println(err)
		return exitError
	}

	if conf.Verbose {
		report(logger, mode, input, output, src, dst)
	}
	return exitOK
}

func report(logger *log.Logger, mode, input, output string, src, dst []byte) {
	compressed := dst
	if mode == "decompress" {
		compressed = src
	}
	symbols := 0
	if h, err := huffman.ReadHeader(compressed); err == nil {
		symbols = len(h.Entries)
	}
	ratio := 0.0
	if len(src) > 0 {
		ratio = float64(len(dst)) / float64(len(src))
	}
	logger.Printf("%s: %s (%d bytes) -> %s (%d bytes), %d distinct symbols, ratio %.3f",
		mode, input, len(src), output, len(dst), symbols, ratio)
	logger.Printf("file %sed successfully", mode)
}
