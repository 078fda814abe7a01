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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-graft/internal/github"
	"github.com/sirseerhq/sirseer-graft/internal/output"
)

func newListCommand() *cobra.Command {
	var anyBranch bool

	cmd := &cobra.Command{
		Use:   "list [user]",
		Short: "List non-archived repositories still on the replaceable default branch",
		Long: `List the user's non-archived, non-fork repositories whose default branch
is the configured replaceable branch (master unless overridden), one
owner/name per line. Without a user argument the authenticated user is
listed. With --all the default-branch filter is dropped.

The output feeds directly into the fix and set commands:

  sirseer-graft list | sirseer-graft fix main`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			login := ""
			if len(args) == 1 {
				login = args[0]
			}

			client := github.NewGraphQLClient(app.token, app.cfg.GitHub.GraphQLEndpoint, app.logger)
			filter := github.RepositoryFilter{
				ReplaceBranch: app.cfg.Branches.Replace,
				AnyBranch:     anyBranch,
			}

			return runList(cmd.Context(), client, output.NewPrinter(cmd.OutOrStdout()), login, filter)
		},
	}

	cmd.Flags().BoolVarP(&anyBranch, "all", "a", false, "List repos with any default branch")

	return cmd
}

// runList executes the list command against the given client.
func runList(ctx context.Context, client github.Client, printer *output.Printer, login string, filter github.RepositoryFilter) error {
	if login == "" {
		viewer, err := client.Viewer(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve the authenticated user: %w", err)
		}
		login = viewer
	}

	for repo, err := range github.All(ctx, github.Repositories(client, login, filter)) {
		if err != nil {
			return err
		}
		if err := printer.Repository(repo); err != nil {
			return err
		}
	}

	return nil
}
