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
	"errors"
	"io"
	"net/http"

	gogithub "github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirseerhq/sirseer-graft/internal/github"
)

func newFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [new-branch]",
		Short: "Rename the default branch for repositories read from stdin",
		Long: `Rename the default branch of every repository named on stdin, one
owner/name per line. For each repository the tip of the replaceable
branch is resolved, a new branch is created at that commit, and the
repository's default branch is flipped to the new name (main unless
overridden).

Repositories are processed independently: a failure in one is logged
and the rest of the batch continues. Nothing is transactional and
nothing is rolled back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			newBranch := app.cfg.Branches.NewName
			if len(args) == 1 {
				newBranch = args[0]
			}

			client := github.NewGraphQLClient(app.token, app.cfg.GitHub.GraphQLEndpoint, app.logger)
			rest, err := github.NewRESTClient(cmd.Context(), app.token, app.cfg.GitHub.APIEndpoint)
			if err != nil {
				return err
			}

			return runFix(cmd.Context(), client, rest, app.logger, cmd.InOrStdin(), app.cfg.Branches.Replace, newBranch)
		},
	}

	return cmd
}

// repositoryPatcher is the slice of the REST client the bulk workflows need.
type repositoryPatcher interface {
	PatchRepository(ctx context.Context, owner, name string, edits github.RepositoryEdits) (*gogithub.Response, error)
}

// runFix performs the branch-rename workflow for every repository line.
// API-level failures in one repository are logged and the next line is
// processed; transport failures abort the whole run.
func runFix(ctx context.Context, client github.Client, patcher repositoryPatcher, logger *zap.Logger, in io.Reader, replaceBranch, newBranch string) error {
	qualifiedName := "refs/heads/" + newBranch

	return forEachLine(in, func(repoPath string) error {
		owner, name, err := parseRepoPath(repoPath)
		if err != nil {
			return err
		}

		logger.Info("processing repository", zap.String("repository", repoPath))

		tip, err := client.ResolveBranch(ctx, owner, name, replaceBranch)
		if err != nil {
			messages, ok := apiErrorMessages(err)
			if !ok {
				return err
			}
			for _, message := range messages {
				logger.Error("failed to resolve branch",
					zap.String("repository", repoPath),
					zap.String("branch", replaceBranch),
					zap.String("message", message))
			}
		}
		logger.Info("resolved branch tip",
			zap.String("repository", repoPath),
			zap.String("branch", replaceBranch),
			zap.String("oid", tip.OID))

		// The tip may be unresolved; the mutation is still attempted
		// and fails visibly on the API side.
		if err := client.CreateRef(ctx, tip.RepositoryID, qualifiedName, tip.OID); err != nil {
			messages, ok := apiErrorMessages(err)
			if !ok {
				return err
			}
			for _, message := range messages {
				logger.Error("failed to create branch",
					zap.String("repository", repoPath),
					zap.String("branch", qualifiedName),
					zap.String("message", message))
			}
		}

		resp, err := patcher.PatchRepository(ctx, owner, name, github.RepositoryEdits{DefaultBranch: &newBranch})
		if err := reportPatch(logger, "failed to update default branch", repoPath, resp, err); err != nil {
			return err
		}

		logger.Info("done", zap.String("repository", repoPath))
		return nil
	})
}

// apiErrorMessages unpacks an *APIError into its individual messages.
// It reports false for any other error, which callers treat as fatal.
func apiErrorMessages(err error) ([]string, bool) {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Messages, true
	}
	return nil, false
}

// reportPatch logs a failed settings PATCH without aborting the batch.
// A transport failure (no response at all) is returned as fatal.
func reportPatch(logger *zap.Logger, message, repoPath string, resp *gogithub.Response, err error) error {
	if resp == nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		fields := []zap.Field{
			zap.String("repository", repoPath),
			zap.Int("status", resp.StatusCode),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Error(message, fields...)
	}
	return nil
}
