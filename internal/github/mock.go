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

// CreateRefCall records the arguments of one CreateRef invocation.
type CreateRefCall struct {
	RepositoryID  string
	QualifiedName string
	OID           string
}

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Canned results
	ViewerLogin      string
	Tip              BranchTip
	RepositoryPages  []Page[string]
	PullRequestPages []Page[PullRequestInfo]

	// Errors to return per method
	ViewerErr      error
	ResolveErr     error
	CreateRefErr   error
	RepositoryErr  error
	PullRequestErr error

	// Track calls for verification
	RepositoryFetches  int
	PullRequestFetches int
	CreateRefCalls     []CreateRefCall
	LastLogin          string
	LastFilter         RepositoryFilter
	LastStates         []string
}

// Viewer implements the Client interface.
func (m *MockClient) Viewer(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.ViewerErr != nil {
		return "", m.ViewerErr
	}
	return m.ViewerLogin, nil
}

// ResolveBranch implements the Client interface.
func (m *MockClient) ResolveBranch(ctx context.Context, owner, name, branch string) (BranchTip, error) {
	if err := ctx.Err(); err != nil {
		return BranchTip{}, err
	}
	return m.Tip, m.ResolveErr
}

// CreateRef implements the Client interface.
func (m *MockClient) CreateRef(ctx context.Context, repositoryID, qualifiedName, oid string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.CreateRefCalls = append(m.CreateRefCalls, CreateRefCall{
		RepositoryID:  repositoryID,
		QualifiedName: qualifiedName,
		OID:           oid,
	})
	return m.CreateRefErr
}

// FetchRepositoryPage implements the Client interface. Pages are served
// in order, one per call; the cursors inside them drive the iteration.
func (m *MockClient) FetchRepositoryPage(ctx context.Context, login string, filter RepositoryFilter, after string) (Page[string], error) {
	if err := ctx.Err(); err != nil {
		return Page[string]{}, err
	}
	m.LastLogin = login
	m.LastFilter = filter
	if m.RepositoryErr != nil {
		return Page[string]{}, m.RepositoryErr
	}
	if m.RepositoryFetches >= len(m.RepositoryPages) {
		return Page[string]{}, nil
	}
	page := m.RepositoryPages[m.RepositoryFetches]
	m.RepositoryFetches++
	return page, nil
}

// FetchPullRequestPage implements the Client interface.
func (m *MockClient) FetchPullRequestPage(ctx context.Context, owner, name string, states []string, after string) (Page[PullRequestInfo], error) {
	if err := ctx.Err(); err != nil {
		return Page[PullRequestInfo]{}, err
	}
	m.LastStates = states
	if m.PullRequestErr != nil {
		return Page[PullRequestInfo]{}, m.PullRequestErr
	}
	if m.PullRequestFetches >= len(m.PullRequestPages) {
		return Page[PullRequestInfo]{}, nil
	}
	page := m.PullRequestPages[m.PullRequestFetches]
	m.PullRequestFetches++
	return page, nil
}
