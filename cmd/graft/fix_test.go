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

package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	gogithub "github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
	"github.com/sirseerhq/sirseer-graft/internal/github"
)

// patchCall records one PatchRepository invocation.
type patchCall struct {
	owner string
	name  string
	edits github.RepositoryEdits
}

// fakePatcher is a repositoryPatcher returning a canned response.
type fakePatcher struct {
	calls  []patchCall
	status int
	err    error
}

func (p *fakePatcher) PatchRepository(_ context.Context, owner, name string, edits github.RepositoryEdits) (*gogithub.Response, error) {
	p.calls = append(p.calls, patchCall{owner: owner, name: name, edits: edits})
	if p.status == 0 {
		return nil, p.err
	}
	return &gogithub.Response{Response: &http.Response{StatusCode: p.status}}, p.err
}

func TestRunFix(t *testing.T) {
	client := &github.MockClient{
		Tip: github.BranchTip{RepositoryID: "R_abc", OID: "deadbeef"},
	}
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	err := runFix(context.Background(), client, patcher, zap.NewNop(), in, "master", "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.CreateRefCalls) != 2 {
		t.Fatalf("CreateRef calls = %d, want 2", len(client.CreateRefCalls))
	}
	first := client.CreateRefCalls[0]
	if first.RepositoryID != "R_abc" || first.QualifiedName != "refs/heads/main" || first.OID != "deadbeef" {
		t.Errorf("first CreateRef call = %+v", first)
	}

	if len(patcher.calls) != 2 {
		t.Fatalf("patch calls = %d, want 2", len(patcher.calls))
	}
	call := patcher.calls[0]
	if call.owner != "octocat" || call.name != "a" {
		t.Errorf("first patch call = %+v", call)
	}
	if call.edits.DefaultBranch == nil || *call.edits.DefaultBranch != "main" {
		t.Errorf("default branch edit = %v", call.edits.DefaultBranch)
	}
	if call.edits.AllowSquashMerge != nil {
		t.Error("fix must not touch merge settings")
	}
}

func TestRunFixContinuesPastAPIErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	client := &github.MockClient{
		Tip:          github.BranchTip{RepositoryID: "R_abc", OID: "deadbeef"},
		CreateRefErr: &github.APIError{Messages: []string{"A ref named \"refs/heads/main\" already exists in the repository."}},
	}
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("octocat/a\n")

	err := runFix(context.Background(), client, patcher, zap.New(core), in, "master", "main")
	if err != nil {
		t.Fatalf("an API-level failure must not abort the batch, got %v", err)
	}

	// The settings patch still runs for the repository.
	if len(patcher.calls) != 1 {
		t.Fatalf("patch calls = %d, want 1", len(patcher.calls))
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("error logs = %d, want 1", len(entries))
	}
	if entries[0].ContextMap()["message"] != "A ref named \"refs/heads/main\" already exists in the repository." {
		t.Errorf("log fields = %v", entries[0].ContextMap())
	}
}

func TestRunFixFatalOnTransportError(t *testing.T) {
	client := &github.MockClient{
		ResolveErr: grafterrors.ErrNetworkFailure,
	}
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	err := runFix(context.Background(), client, patcher, zap.NewNop(), in, "master", "main")
	if !errors.Is(err, grafterrors.ErrNetworkFailure) {
		t.Fatalf("error = %v, want ErrNetworkFailure", err)
	}
	if len(patcher.calls) != 0 {
		t.Error("no patch may run after a transport failure")
	}
}

func TestRunFixFatalOnMalformedLine(t *testing.T) {
	client := &github.MockClient{}
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("not-a-repo-path\n")

	err := runFix(context.Background(), client, patcher, zap.NewNop(), in, "master", "main")
	if !errors.Is(err, grafterrors.ErrBadRepoPath) {
		t.Fatalf("error = %v, want ErrBadRepoPath", err)
	}
}

func TestRunFixReportsFailedPatch(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	client := &github.MockClient{
		Tip: github.BranchTip{RepositoryID: "R_abc", OID: "deadbeef"},
	}
	patcher := &fakePatcher{status: http.StatusForbidden, err: errors.New("403 Must have admin rights")}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	err := runFix(context.Background(), client, patcher, zap.New(core), in, "master", "main")
	if err != nil {
		t.Fatalf("a failed patch with a response must not abort the batch, got %v", err)
	}
	if len(patcher.calls) != 2 {
		t.Errorf("patch calls = %d, want both repositories attempted", len(patcher.calls))
	}
	if logs.Len() != 2 {
		t.Errorf("error logs = %d, want one per failed patch", logs.Len())
	}
}
