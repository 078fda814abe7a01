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

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const defaultAPIEndpoint = "https://api.github.com"

// RESTClient wraps the GitHub REST API for the one operation GraphQL
// cannot perform: patching repository settings, including the default
// branch.
type RESTClient struct {
	gh *gogithub.Client
}

// NewRESTClient creates a REST client authenticated with the given
// token. apiEndpoint overrides the API base URL for GitHub Enterprise;
// pass the default endpoint or an empty string for github.com.
func NewRESTClient(ctx context.Context, token, apiEndpoint string) (*RESTClient, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gogithub.NewClient(oauth2.NewClient(ctx, source))

	if apiEndpoint != "" && apiEndpoint != defaultAPIEndpoint {
		base, err := url.Parse(strings.TrimSuffix(apiEndpoint, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid api endpoint %q: %w", apiEndpoint, err)
		}
		client.BaseURL = base
	}

	return &RESTClient{gh: client}, nil
}

// PatchRepository sends a partial update of the repository's settings.
// Only non-nil fields of edits are included in the request body. The
// response is returned even on a non-2xx status so the caller can
// report it without aborting the rest of a batch.
func (c *RESTClient) PatchRepository(ctx context.Context, owner, name string, edits RepositoryEdits) (*gogithub.Response, error) {
	repo := &gogithub.Repository{
		DefaultBranch:    edits.DefaultBranch,
		AllowSquashMerge: edits.AllowSquashMerge,
		AllowRebaseMerge: edits.AllowRebaseMerge,
		AllowMergeCommit: edits.AllowMergeCommit,
	}

	_, resp, err := c.gh.Repositories.Edit(ctx, owner, name, repo)
	return resp, err
}
