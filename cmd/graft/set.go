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
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirseerhq/sirseer-graft/internal/github"
)

func newSetCommand() *cobra.Command {
	var (
		squash      triBool
		rebase      triBool
		mergeCommit triBool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Patch merge settings on repositories read from stdin",
		Long: `Patch merge settings on every repository named on stdin, one owner/name
per line. Only the settings named by flags are sent; everything else is
left untouched. Boolean flags accept yes/y/true/on and no/n/false/off,
case-insensitively.

Repositories are processed independently; a failed patch is logged and
the rest of the batch continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			rest, err := github.NewRESTClient(cmd.Context(), app.token, app.cfg.GitHub.APIEndpoint)
			if err != nil {
				return err
			}

			edits := github.RepositoryEdits{
				AllowSquashMerge: squash.ptr(),
				AllowRebaseMerge: rebase.ptr(),
				AllowMergeCommit: mergeCommit.ptr(),
			}

			return runSet(cmd.Context(), rest, app.logger, cmd.InOrStdin(), edits)
		},
	}

	cmd.Flags().Var(&squash, "allow-squash-merge", "Permit squash merging on the repos (yes/no)")
	cmd.Flags().Var(&rebase, "allow-rebase-merge", "Permit rebase merging on the repos (yes/no)")
	cmd.Flags().Var(&mergeCommit, "allow-merge-commit", "Permit merge commits on the repos (yes/no)")

	return cmd
}

// runSet applies the same partial settings update to every repository
// line, logging failures and moving on.
func runSet(ctx context.Context, patcher repositoryPatcher, logger *zap.Logger, in io.Reader, edits github.RepositoryEdits) error {
	return forEachLine(in, func(repoPath string) error {
		owner, name, err := parseRepoPath(repoPath)
		if err != nil {
			return err
		}

		logger.Info("patching repository", zap.String("repository", repoPath))

		resp, err := patcher.PatchRepository(ctx, owner, name, edits)
		return reportPatch(logger, "failed to patch repository", repoPath, resp, err)
	})
}
