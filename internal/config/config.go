// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the command line tool's settings.
package config

import (
	"flag"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read when no -config flag is given. It may be absent.
const DefaultConfigFile = "/etc/fasthuff/fasthuff.toml"

const envPrefix = "FASTHUFF_"

// Configuration specifies the complete tool configuration
type Configuration struct {
	Verbose   bool `toml:"verbose"`
	NoClobber bool `toml:"no_clobber"`
	FileMode  uint `toml:"file_mode"`
}

// Parse all configuration and return it with the remaining positional arguments.
//
// The precedence is:
//
//	command line flags > environment > configuration file > defaults
func Parse(name string, args []string, output io.Writer) (Configuration, []string, error) {
	var config Configuration
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	setupFlags(fs, &config)

	file := findConfigFile(args)
	if file == "" {
		file = envValueForFlag("config")
	}
	if err := parseConfigFile(file, &config); err != nil {
		return config, nil, err
	}

	if err := fs.Parse(args); err != nil {
		return config, nil, err
	}

	if err := setUnsetFlagsFromEnv(fs); err != nil {
		return config, nil, err
	}
	return config, fs.Args(), nil
}

// We want to parse the flags after we've read in the config file so that they
// take precedence, so we're going to extract the config file flag directly.
func findConfigFile(args []string) string {
	configRx := regexp.MustCompile("^--?config(?:=(.*))?$")
	for index, arg := range args {
		if arg == "--" {
			break
		}
		match := configRx.FindStringSubmatch(arg)
		if match == nil {
			continue
		}
		if match[1] != "" {
			return match[1]
		}
		if len(args) > (index + 1) {
			return args[index+1]
		}
	}
	return ""
}

func parseConfigFile(configFile string, config *Configuration) error {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile
	}
	_, err := toml.DecodeFile(configFile, config)
	if os.IsNotExist(err) && !explicit {
		return nil
	}
	return err
}

func setUnsetFlagsFromEnv(fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || f.Name == "config" || err != nil {
			return
		}
		if val, ok := os.LookupEnv(envKey(f.Name)); ok {
			err = fs.Set(f.Name, val)
		}
	})
	return err
}

func envKey(name string) string {
	return envPrefix + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

func envValueForFlag(name string) string {
	return os.Getenv(envKey(name))
}
