// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDirName = ".mfn"

// Config is the optional per-user CLI configuration, read from
// ~/.mfn/config.yaml. Everything in it can be overridden by flags or
// environment variables.
type Config struct {
	BaseURL  string `yaml:"base_url"`
	WebURL   string `yaml:"web_url"`
	Username string `yaml:"username"`
}

// LoadConfig reads the config file if it exists. A missing or unreadable
// file is not an error; every field has a flag or env fallback.
func LoadConfig() Config {
	var cfg Config

	configFile := filepath.Join(os.Getenv("HOME"), configDirName, "config.yaml")
	data, err := os.ReadFile(configFile)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
