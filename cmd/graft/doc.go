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

// Package main implements the sirseer-graft command-line interface.
// This tool lists a user's GitHub repositories, renames default
// branches in bulk, finds pull requests by the files they touch, and
// patches repository merge settings.
//
// The CLI supports:
//   - Listing repositories still on the replaceable default branch
//   - Renaming default branches for a stdin-supplied list of repositories
//   - Searching pull requests by changed files, exactly or by regexp
//   - Patching repository merge settings in bulk
//   - GitHub token authentication via flag or environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	sirseer-graft list [user] [--all]
//	sirseer-graft fix [new-branch] < repos.txt
//	sirseer-graft find-pr <owner>/<repo> [files...] [--mode simple|re] [--status open|closed|merged|any]...
//	sirseer-graft set [--allow-squash-merge BOOL] [--allow-rebase-merge BOOL] [--allow-merge-commit BOOL] < repos.txt
//
// Example:
//
//	export GH_ACCESS_TOKEN=your_token
//	sirseer-graft list octocat | sirseer-graft fix main
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
