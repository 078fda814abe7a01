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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
	"github.com/sirseerhq/sirseer-graft/pkg/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sirseer-graft",
		Short: "Bulk-migrate default branches and settings of GitHub repositories",
		Long: `SirSeer Graft renames the default branch of GitHub repositories in bulk:
it lists the repositories still on the old branch, creates the new branch at
the old tip, and flips the repository's default branch. It can also find pull
requests by the files they touch and patch repository merge settings.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().String("token", "", "GitHub access token (overrides the configured environment variable)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, or error")

	rootCmd.AddCommand(
		newListCommand(),
		newFixCommand(),
		newFindPRCommand(),
		newSetCommand(),
	)

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, grafterrors.ErrMissingToken) ||
		errors.Is(err, grafterrors.ErrInvalidToken) ||
		errors.Is(err, grafterrors.ErrRepoNotFound) ||
		errors.Is(err, grafterrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, grafterrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
