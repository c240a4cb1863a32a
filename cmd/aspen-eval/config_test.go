// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("policy", "", "")
	flags.String("request", "", "")
	flags.Bool("validate", false, "")
	flags.String("log-format", "text", "")

	cfg, err := loadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.PolicyPath)
}

func TestLoadConfigFileIsOverriddenByFlags(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("policy: /from/file.json\nlog-format: json\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("policy", "", "")
	flags.String("request", "", "")
	flags.Bool("validate", false, "")
	flags.String("log-format", "text", "")
	require.NoError(t, flags.Set("policy", "/from/flag.json"))

	cfg, err := loadConfig(configPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.json", cfg.PolicyPath, "an explicitly set flag must win over the config file")
	assert.Equal(t, "json", cfg.LogFormat, "an unset flag must fall back to the config file value")
}
