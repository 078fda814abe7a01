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

package github

import "context"

// Client defines the interface for the GraphQL side of GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// Viewer returns the login of the authenticated user.
	Viewer(ctx context.Context) (string, error)

	// ResolveBranch returns the repository's opaque id and the commit at
	// the tip of the named branch. The branch name does not need to be
	// fully qualified. API-level failures are returned as *APIError with
	// whatever fields could still be resolved left in the BranchTip.
	ResolveBranch(ctx context.Context, owner, name, branch string) (BranchTip, error)

	// CreateRef creates a new ref (fully qualified, i.e. refs/heads/...)
	// pointing at the given object id. API-level failures are returned
	// as *APIError carrying every message from the errors array.
	CreateRef(ctx context.Context, repositoryID, qualifiedName, oid string) error

	// FetchRepositoryPage retrieves one page of the user's repositories,
	// filtered client-side, along with the cursor for the next page.
	FetchRepositoryPage(ctx context.Context, login string, filter RepositoryFilter, after string) (Page[string], error)

	// FetchPullRequestPage retrieves one page of pull requests in the
	// given states together with the files each one changed.
	FetchPullRequestPage(ctx context.Context, owner, name string, states []string, after string) (Page[PullRequestInfo], error)
}
