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

// Package github provides clients for the GitHub GraphQL and REST APIs
// tailored to bulk repository administration: listing a user's
// repositories, finding pull requests by the files they touch, creating
// refs, and patching repository settings.
//
// The package includes:
//   - A Client interface covering every GraphQL operation the CLI needs
//   - A GraphQL implementation that exposes the raw response envelope,
//     so callers can act on individual entries of the errors array
//   - A cursor-based pagination driver generic over any page query
//   - A REST client for the repository settings PATCH endpoint
//   - A mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql", logger)
//	repos := github.Repositories(client, "octocat", github.RepositoryFilter{ReplaceBranch: "master"})
//	for repo, err := range github.All(ctx, repos) {
//	    if err != nil {
//	        // Handle error
//	    }
//	    // Process repository
//	}
package github
