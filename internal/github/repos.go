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

	"github.com/sirseerhq/sirseer-graft/internal/jsonpath"
)

// Repositories lists repositories owned by login, one owner/name string
// per repository. Forks are excluded server-side; archived repositories
// and default-branch filtering happen client-side per the filter.
const repositoriesQuery = `
query ($login: String!, $after: String) {
  user(login: $login) {
    repositories(affiliations: OWNER, isFork: false, first: 100, after: $after) {
      nodes {
        nameWithOwner
        isArchived
        defaultBranchRef {
          name
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

// repositoryQuery holds the fixed parameters of one repository listing.
// It is stateless across pages; the cursor travels through FetchPage.
type repositoryQuery struct {
	client Client
	login  string
	filter RepositoryFilter
}

// Repositories returns a page query over the repositories owned by
// login, filtered per filter. Walk it with All.
func Repositories(client Client, login string, filter RepositoryFilter) PageQuery[string] {
	return repositoryQuery{client: client, login: login, filter: filter}
}

func (q repositoryQuery) FetchPage(ctx context.Context, after string) (Page[string], error) {
	return q.client.FetchRepositoryPage(ctx, q.login, q.filter, after)
}

// FetchRepositoryPage retrieves up to 100 repositories owned by login
// and applies the filter. An empty nodes list is a normal terminal
// case: a user whose repositories all filtered out, or who has none,
// yields an empty page rather than an error.
func (c *GraphQLClient) FetchRepositoryPage(ctx context.Context, login string, filter RepositoryFilter, after string) (Page[string], error) {
	variables := map[string]any{
		"login": login,
	}
	if after != "" {
		variables["after"] = after
	}

	resp, err := c.do(ctx, repositoriesQuery, variables)
	if err != nil {
		return Page[string]{}, err
	}

	data, cursor, err := c.pageEnvelope("user.repositories.pageInfo", resp)
	if err != nil {
		return Page[string]{}, err
	}

	rawNodes, err := jsonpath.LookupRequired(data, "user.repositories.nodes")
	if err != nil {
		return Page[string]{}, err
	}
	nodes, _ := rawNodes.([]any)

	items := make([]string, 0, len(nodes))
	for _, rawNode := range nodes {
		node, ok := rawNode.(map[string]any)
		if !ok {
			continue
		}
		if archived, _ := node["isArchived"].(bool); archived {
			continue
		}
		if !filter.AnyBranch {
			// defaultBranchRef is null for empty repositories.
			branch, ok := jsonpath.String(node, "defaultBranchRef.name")
			if !ok || branch != filter.ReplaceBranch {
				continue
			}
		}
		if name, ok := node["nameWithOwner"].(string); ok {
			items = append(items, name)
		}
	}

	return Page[string]{Items: items, NextCursor: cursor}, nil
}
