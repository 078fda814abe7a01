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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sirseerhq/sirseer-graft/internal/config"
	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
)

// appContext bundles what every subcommand needs: the loaded
// configuration, an explicitly constructed logger, and the resolved
// token. It is built once per invocation, before any network activity.
type appContext struct {
	cfg    *config.Config
	logger *zap.Logger
	token  string
}

func newAppContext(cmd *cobra.Command) (*appContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	levelName, _ := cmd.Flags().GetString("log-level")
	logger, err := newLogger(levelName)
	if err != nil {
		return nil, err
	}

	token, err := resolveToken(cmd, cfg)
	if err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, logger: logger, token: token}, nil
}

func (a *appContext) close() {
	_ = a.logger.Sync()
}

// newLogger builds the process logger writing to stderr, keeping stdout
// clean for command output.
func newLogger(levelName string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("unsupported log level %q", levelName)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)
	logConfig.Encoding = "console"
	logConfig.OutputPaths = []string{"stderr"}
	logConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan 02 15:04:05")
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return logConfig.Build()
}

// resolveToken returns the GitHub token from the --token flag or the
// configured environment variable. A missing token is fatal before any
// network call is made.
func resolveToken(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		return token, nil
	}
	if token := os.Getenv(cfg.GitHub.TokenEnv); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("please put your API token in the %s environment variable or use --token: %w",
		cfg.GitHub.TokenEnv, grafterrors.ErrMissingToken)
}

// parseRepoPath splits an owner/name repository reference. Exactly one
// slash is expected; anything else is a user error.
func parseRepoPath(repoPath string) (owner, name string, err error) {
	parts := strings.Split(repoPath, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected owner/name, got %q", grafterrors.ErrBadRepoPath, repoPath)
	}

	owner = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if owner == "" || name == "" {
		return "", "", fmt.Errorf("%w: expected owner/name, got %q", grafterrors.ErrBadRepoPath, repoPath)
	}

	return owner, name, nil
}

// forEachLine feeds every non-blank line of r to fn, trimming
// surrounding whitespace. The first error stops the walk.
func forEachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseBool parses the boolean spellings the set command accepts.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "on":
		return true, nil
	case "n", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("could not parse %q as boolean, try yes/y/true/on or no/n/false/off", s)
}

// triBool is a pflag.Value that distinguishes an unset flag from an
// explicit true or false, so the set command only patches the settings
// the user actually named.
type triBool struct {
	set   bool
	value bool
}

func (b *triBool) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *triBool) Set(s string) error {
	value, err := parseBool(s)
	if err != nil {
		return err
	}
	b.value = value
	b.set = true
	return nil
}

func (b *triBool) Type() string {
	return "bool"
}

// ptr returns the flag's value as an optional field for a partial
// update, nil when the flag was never set.
func (b *triBool) ptr() *bool {
	if !b.set {
		return nil
	}
	value := b.value
	return &value
}
