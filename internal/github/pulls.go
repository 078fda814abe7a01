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

	"go.uber.org/zap"

	"github.com/sirseerhq/sirseer-graft/internal/jsonpath"
)

// Pull requests with the files each one changed. Only the first 100
// files per pull request are requested; the nested pageInfo reveals
// when that truncated the list.
const pullRequestFilesQuery = `
query ($owner: String!, $name: String!, $after: String, $states: [PullRequestState!]) {
  repository(owner: $owner, name: $name) {
    pullRequests(first: 50, after: $after, states: $states) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        title
        url
        files(first: 100) {
          nodes {
            path
          }
          pageInfo {
            hasNextPage
          }
        }
      }
    }
  }
}`

// pullRequestQuery holds the fixed parameters of one pull request
// listing: the repository and the states of interest.
type pullRequestQuery struct {
	client Client
	owner  string
	name   string
	states []string
}

// PullRequestFiles returns a page query over the repository's pull
// requests in the given states. Walk it with All.
func PullRequestFiles(client Client, owner, name string, states []string) PageQuery[PullRequestInfo] {
	return pullRequestQuery{client: client, owner: owner, name: name, states: states}
}

func (q pullRequestQuery) FetchPage(ctx context.Context, after string) (Page[PullRequestInfo], error) {
	return q.client.FetchPullRequestPage(ctx, q.owner, q.name, q.states, after)
}

// FetchPullRequestPage retrieves up to 50 pull requests and maps each
// node into a PullRequestInfo. A pull request whose files sub-list has
// further pages is known-incomplete; it is reported with a warning
// naming the pull request, and iteration continues.
func (c *GraphQLClient) FetchPullRequestPage(ctx context.Context, owner, name string, states []string, after string) (Page[PullRequestInfo], error) {
	variables := map[string]any{
		"owner":  owner,
		"name":   name,
		"states": states,
	}
	if after != "" {
		variables["after"] = after
	}

	resp, err := c.do(ctx, pullRequestFilesQuery, variables)
	if err != nil {
		return Page[PullRequestInfo]{}, err
	}

	data, cursor, err := c.pageEnvelope("repository.pullRequests.pageInfo", resp)
	if err != nil {
		return Page[PullRequestInfo]{}, err
	}

	rawNodes, err := jsonpath.LookupRequired(data, "repository.pullRequests.nodes")
	if err != nil {
		return Page[PullRequestInfo]{}, err
	}
	nodes, _ := rawNodes.([]any)

	items := make([]PullRequestInfo, 0, len(nodes))
	for _, rawNode := range nodes {
		node, ok := rawNode.(map[string]any)
		if !ok {
			continue
		}

		info := PullRequestInfo{}
		info.Title, _ = node["title"].(string)
		info.URL, _ = node["url"].(string)

		rawFiles, err := jsonpath.LookupRequired(node, "files.nodes")
		if err != nil {
			return Page[PullRequestInfo]{}, err
		}
		files, _ := rawFiles.([]any)
		info.ChangedFiles = make([]string, 0, len(files))
		for _, rawFile := range files {
			file, ok := rawFile.(map[string]any)
			if !ok {
				continue
			}
			if path, ok := file["path"].(string); ok {
				info.ChangedFiles = append(info.ChangedFiles, path)
			}
		}

		if truncated, _ := jsonpath.Bool(node, "files.pageInfo.hasNextPage"); truncated {
			c.logger.Warn("pull request changed more than 100 files, some will not be considered",
				zap.String("title", info.Title),
				zap.String("url", info.URL))
		}

		items = append(items, info)
	}

	return Page[PullRequestInfo]{Items: items, NextCursor: cursor}, nil
}
