// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for sirseer-graft with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides for file-based settings.
const (
	envAPIEndpoint     = "GRAFT_API_ENDPOINT"
	envGraphQLEndpoint = "GRAFT_GRAPHQL_ENDPOINT"
	envTokenEnv        = "GRAFT_TOKEN_ENV"
	envReplaceBranch   = "GRAFT_REPLACE_BRANCH"
)

// Load loads configuration from multiple sources and applies them in the
// correct precedence order. If configPath is provided, it loads from that
// specific file. Otherwise, it searches standard locations:
//   - .sirseer-graft.yaml (current directory)
//   - .sirseer-graft.yml (current directory)
//   - ~/.sirseer/graft.yaml
//   - ~/.sirseer/graft.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".sirseer-graft.yaml",
			".sirseer-graft.yml",
			filepath.Join(os.Getenv("HOME"), ".sirseer", "graft.yaml"),
			filepath.Join(os.Getenv("HOME"), ".sirseer", "graft.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file into cfg, leaving
// unspecified fields at their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides on top of the
// file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envAPIEndpoint); v != "" {
		cfg.GitHub.APIEndpoint = v
	}
	if v := os.Getenv(envGraphQLEndpoint); v != "" {
		cfg.GitHub.GraphQLEndpoint = v
	}
	if v := os.Getenv(envTokenEnv); v != "" {
		cfg.GitHub.TokenEnv = v
	}
	if v := os.Getenv(envReplaceBranch); v != "" {
		cfg.Branches.Replace = v
	}
}
