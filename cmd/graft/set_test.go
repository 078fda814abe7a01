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

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
	"github.com/sirseerhq/sirseer-graft/internal/github"
)

func TestRunSet(t *testing.T) {
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	squash := true
	rebase := false
	edits := github.RepositoryEdits{
		AllowSquashMerge: &squash,
		AllowRebaseMerge: &rebase,
	}

	err := runSet(context.Background(), patcher, zap.NewNop(), in, edits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(patcher.calls) != 2 {
		t.Fatalf("patch calls = %d, want 2", len(patcher.calls))
	}
	call := patcher.calls[1]
	if call.owner != "octocat" || call.name != "b" {
		t.Errorf("second patch call = %+v", call)
	}
	if call.edits.AllowSquashMerge == nil || !*call.edits.AllowSquashMerge {
		t.Error("squash merge edit lost")
	}
	if call.edits.AllowRebaseMerge == nil || *call.edits.AllowRebaseMerge {
		t.Error("rebase merge edit lost")
	}
	if call.edits.AllowMergeCommit != nil || call.edits.DefaultBranch != nil {
		t.Error("unnamed settings must stay nil")
	}
}

func TestRunSetLogsFailedPatchAndContinues(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	patcher := &fakePatcher{status: http.StatusNotFound, err: errors.New("404 Not Found")}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	err := runSet(context.Background(), patcher, zap.New(core), in, github.RepositoryEdits{})
	if err != nil {
		t.Fatalf("a failed patch with a response must not abort the batch, got %v", err)
	}
	if len(patcher.calls) != 2 {
		t.Errorf("patch calls = %d, want both repositories attempted", len(patcher.calls))
	}
	if logs.Len() != 2 {
		t.Errorf("error logs = %d, want one per failure", logs.Len())
	}
}

func TestRunSetFatalWithoutResponse(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	patcher := &fakePatcher{err: transportErr}
	in := strings.NewReader("octocat/a\noctocat/b\n")

	err := runSet(context.Background(), patcher, zap.NewNop(), in, github.RepositoryEdits{})
	if !errors.Is(err, transportErr) {
		t.Fatalf("error = %v, want the transport error", err)
	}
	if len(patcher.calls) != 1 {
		t.Errorf("patch calls = %d, want 1 (abort after the transport failure)", len(patcher.calls))
	}
}

func TestRunSetFatalOnMalformedLine(t *testing.T) {
	patcher := &fakePatcher{status: http.StatusOK}
	in := strings.NewReader("octocat/a\nbroken\n")

	err := runSet(context.Background(), patcher, zap.NewNop(), in, github.RepositoryEdits{})
	if !errors.Is(err, grafterrors.ErrBadRepoPath) {
		t.Fatalf("error = %v, want ErrBadRepoPath", err)
	}
}
