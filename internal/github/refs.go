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

const branchInfoQuery = `
query ($owner: String!, $name: String!, $branch: String!) {
  repository(owner: $owner, name: $name) {
    id
    ref(qualifiedName: $branch) {
      target {
        oid
      }
    }
  }
}`

// The default branch itself is not mutable through GraphQL; only the
// ref creation is. Flipping the default happens via the REST client.
const createRefMutation = `
mutation ($repositoryId: ID!, $name: String!, $oid: GitObjectID!) {
  createRef(input: {repositoryId: $repositoryId, name: $name, oid: $oid}) {
    ref {
      name
      target {
        oid
      }
    }
  }
}`

// ResolveBranch returns the repository's opaque id and the tip commit of
// the named branch. The ref is null when the branch does not exist; the
// corresponding BranchTip field is then left empty rather than treated
// as a malformed response. When the errors array is non-empty the
// resolved fields are still returned alongside the *APIError, so the
// caller decides how visible the failure should be.
func (c *GraphQLClient) ResolveBranch(ctx context.Context, owner, name, branch string) (BranchTip, error) {
	variables := map[string]any{
		"owner":  owner,
		"name":   name,
		"branch": branch,
	}

	resp, err := c.do(ctx, branchInfoQuery, variables)
	if err != nil {
		return BranchTip{}, err
	}

	tip := BranchTip{}
	tip.RepositoryID, _ = jsonpath.String(resp.Data, "repository.id")
	tip.OID, _ = jsonpath.String(resp.Data, "repository.ref.target.oid")

	if len(resp.Errors) > 0 {
		return tip, &APIError{Messages: resp.errorMessages()}
	}
	return tip, nil
}

// CreateRef creates a new ref in the repository identified by its opaque
// id. qualifiedName must be fully qualified (refs/heads/...). A response
// with a non-empty errors array is returned as an *APIError carrying
// every message; callers log them and carry on with the rest of the
// batch.
func (c *GraphQLClient) CreateRef(ctx context.Context, repositoryID, qualifiedName, oid string) error {
	variables := map[string]any{
		"repositoryId": repositoryID,
		"name":         qualifiedName,
		"oid":          oid,
	}

	resp, err := c.do(ctx, createRefMutation, variables)
	if err != nil {
		return err
	}

	if len(resp.Errors) > 0 {
		return &APIError{Messages: resp.errorMessages()}
	}
	return nil
}
