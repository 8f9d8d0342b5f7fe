// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package config

import "flag"

func setupFlags(fs *flag.FlagSet, config *Configuration) {
	_ = fs.String("config", DefaultConfigFile, "The path to the configuration file")

	fs.BoolVar(&config.Verbose, "verbose", false, "Log sizes and compression ratio")
	fs.BoolVar(&config.NoClobber, "no-clobber", false, "Refuse to overwrite an existing output file")
	fs.UintVar(&config.FileMode, "file-mode", 0o644, "Permission bits of the output file")
}
