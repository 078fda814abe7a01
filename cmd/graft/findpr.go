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
	"github.com/sirseerhq/sirseer-graft/internal/match"
	"github.com/sirseerhq/sirseer-graft/internal/output"
)

func newFindPRCommand() *cobra.Command {
	var (
		mode     string
		statuses []string
	)

	cmd := &cobra.Command{
		Use:   "find-pr <owner>/<repo> [files...]",
		Short: "Find pull requests touching the specified files",
		Long: `Find pull requests in the repository that touched the given files. A
pull request matches when one of its changed files satisfies every
pattern. In simple mode patterns are exact paths (a leading slash is
ignored); in re mode they are unanchored regular expressions.

Statuses accumulate: --status open --status merged searches both. The
default is open only.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := parseRepoPath(args[0])
			if err != nil {
				return err
			}
			states, err := statesFor(statuses)
			if err != nil {
				return err
			}
			matches, err := matcherFor(mode, args[1:])
			if err != nil {
				return err
			}

			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			client := github.NewGraphQLClient(app.token, app.cfg.GitHub.GraphQLEndpoint, app.logger)

			return runFindPR(cmd.Context(), client, output.NewPrinter(cmd.OutOrStdout()), owner, name, states, matches)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "simple", "Match mode: simple or re")
	cmd.Flags().StringArrayVarP(&statuses, "status", "s", nil, "PR status: open, closed, merged, or any (repeatable)")

	return cmd
}

// statesFor maps the status flags onto GraphQL pull request states.
// With no flags only open pull requests are searched.
func statesFor(statuses []string) ([]string, error) {
	statusMap := map[string][]string{
		"open":   {github.StateOpen},
		"closed": {github.StateClosed},
		"merged": {github.StateMerged},
		"any":    {github.StateOpen, github.StateClosed, github.StateMerged},
	}

	var states []string
	for _, status := range statuses {
		mapped, ok := statusMap[status]
		if !ok {
			return nil, fmt.Errorf("unknown status %q, expected open, closed, merged, or any", status)
		}
		states = append(states, mapped...)
	}

	if len(states) == 0 {
		states = []string{github.StateOpen}
	}
	return states, nil
}

// matcherFor builds the changed-files predicate from the mode and the
// file patterns. Pattern errors surface before any network activity.
func matcherFor(mode string, patterns []string) (func(files []string) bool, error) {
	matchers := make([]match.Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		switch mode {
		case "simple":
			matchers = append(matchers, match.Simple(pattern))
		case "re":
			matcher, err := match.Regexp(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			matchers = append(matchers, matcher)
		default:
			return nil, fmt.Errorf("unknown match mode %q, expected simple or re", mode)
		}
	}
	return match.FileSet(matchers...), nil
}

// runFindPR walks every pull request in the given states and prints the
// ones whose changed files satisfy the predicate.
func runFindPR(ctx context.Context, client github.Client, printer *output.Printer, owner, name string, states []string, matches func(files []string) bool) error {
	for pr, err := range github.All(ctx, github.PullRequestFiles(client, owner, name, states)) {
		if err != nil {
			return err
		}
		if matches(pr.ChangedFiles) {
			if err := printer.PullRequest(pr); err != nil {
				return err
			}
		}
	}

	return nil
}
