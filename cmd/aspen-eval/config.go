// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// cliConfig is the resolved configuration for one aspen-eval invocation:
// flags layered over an optional YAML config file.
type cliConfig struct {
	PolicyPath  string `koanf:"policy"`
	RequestPath string `koanf:"request"`
	Validate    bool   `koanf:"validate"`
	LogFormat   string `koanf:"log-format"`
}

// loadConfig merges an optional YAML config file with the command's
// flags, flags taking precedence — grounded on the teacher's cobra CLI
// layering a persistent --config flag over subcommand flags, generalized
// here to a real koanf-based file+posflag merge.
func loadConfig(configPath string, flags *pflag.FlagSet) (*cliConfig, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, err
	}

	cfg := &cliConfig{LogFormat: "text"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
