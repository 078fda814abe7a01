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
	"iter"

	"go.uber.org/zap"

	"github.com/sirseerhq/sirseer-graft/internal/jsonpath"
)

// Page is one page of paginated results. NextCursor is the opaque
// continuation token for the following page; it is empty exactly when
// no further pages exist.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// PageQuery fetches one page of results for a fixed set of request
// parameters. Implementations are stateless across pages: the cursor of
// the previous page is passed in explicitly, with an empty string
// requesting the first page.
type PageQuery[T any] interface {
	FetchPage(ctx context.Context, after string) (Page[T], error)
}

// All walks every page of the query and yields its items lazily, in
// page order and API order within each page, with at most one page in
// flight at a time. The sequence is finite and not restartable. The
// first fetch error is yielded with a zero item and ends the sequence;
// no partial page follows an error.
func All[T any](ctx context.Context, query PageQuery[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		after := ""
		for {
			page, err := query.FetchPage(ctx, after)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}

			after = page.NextCursor
			if after == "" {
				return
			}
		}
	}
}

// pageEnvelope folds a GraphQL response into pagination state. A
// non-empty errors array aborts the page regardless of whether valid
// pagination data is also present; every message is logged and the
// whole array is returned as an *APIError. Otherwise the pagination
// descriptor is located at pageInfoPath and the continuation cursor is
// taken from endCursor only when hasNextPage is set.
//
// The returned data is the entire response data object, not yet mapped
// into any item type: that transform belongs to the concrete query, so
// the pagination core stays independent of any one query's shape.
func (c *GraphQLClient) pageEnvelope(pageInfoPath string, resp *queryResponse) (map[string]any, string, error) {
	if len(resp.Errors) > 0 {
		for _, apiErr := range resp.Errors {
			c.logger.Error("graphql response returned an error",
				zap.String("message", apiErr.Message))
		}
		return nil, "", &APIError{Messages: resp.errorMessages()}
	}

	info, err := jsonpath.LookupRequired(resp.Data, pageInfoPath)
	if err != nil {
		return nil, "", err
	}
	pageInfo, ok := info.(map[string]any)
	if !ok {
		return nil, "", &APIError{Messages: []string{"pageInfo is not an object at " + pageInfoPath}}
	}

	cursor := ""
	if hasNext, _ := pageInfo["hasNextPage"].(bool); hasNext {
		cursor, _ = pageInfo["endCursor"].(string)
	}

	return resp.Data, cursor, nil
}
