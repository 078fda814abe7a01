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

// PullRequestInfo is a read-only view of one pull request: its title,
// URL, and the paths it changed. ChangedFiles holds at most the first
// 100 files; a pull request with more is reported with a truncation
// warning when fetched.
type PullRequestInfo struct {
	Title        string
	URL          string
	ChangedFiles []string
}

// Pull request states accepted by the GraphQL PullRequestState enum.
const (
	StateOpen   = "OPEN"
	StateClosed = "CLOSED"
	StateMerged = "MERGED"
)

// BranchTip identifies a repository and the commit at the head of one
// of its branches. Either field may be empty when the repository or the
// branch could not be resolved; downstream mutations then fail visibly.
type BranchTip struct {
	RepositoryID string
	OID          string
}

// RepositoryFilter controls which repositories a listing yields.
// Archived repositories are always skipped. Unless AnyBranch is set,
// only repositories whose default branch equals ReplaceBranch pass.
type RepositoryFilter struct {
	ReplaceBranch string
	AnyBranch     bool
}

// RepositoryEdits is a partial update of repository settings. Only
// non-nil fields are sent to the PATCH endpoint.
type RepositoryEdits struct {
	DefaultBranch    *string
	AllowSquashMerge *bool
	AllowRebaseMerge *bool
	AllowMergeCommit *bool
}
