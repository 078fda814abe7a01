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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
)

// graphqlRequest mirrors the wire shape do sends.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestServer records incoming GraphQL requests and replies with the
// given handler. Returns the client pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*GraphQLClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGraphQLClient("test-token", server.URL, zap.NewNop()), server
}

func TestDoSendsQueryAndVariables(t *testing.T) {
	var got graphqlRequest
	var gotAuth, gotAgent string

	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"data":{}}`))
	})

	_, err := client.do(context.Background(), "query { viewer { login } }", map[string]any{"login": "octocat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Query != "query { viewer { login } }" {
		t.Errorf("query = %q", got.Query)
	}
	if got.Variables["login"] != "octocat" {
		t.Errorf("variables = %v", got.Variables)
	}
	if gotAuth != "token test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "token test-token")
	}
	if !strings.HasPrefix(gotAgent, "sirseer-graft/") {
		t.Errorf("User-Agent = %q, want sirseer-graft prefix", gotAgent)
	}
}

func TestDoKeepsErrorsArrayIntact(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"data": {"repository": {"id": "R_1"}},
			"errors": [
				{"message": "A ref named main already exists"},
				{"message": "Something else went wrong"}
			]
		}`))
	})

	resp, err := client.do(context.Background(), "mutation {}", nil)
	if err != nil {
		t.Fatalf("a response with graphql errors must not be a transport error, got %v", err)
	}

	if len(resp.Errors) != 2 {
		t.Fatalf("errors = %v, want 2 entries", resp.Errors)
	}
	if resp.Errors[0].Message != "A ref named main already exists" {
		t.Errorf("first message = %q", resp.Errors[0].Message)
	}
	if id, ok := resp.Data["repository"].(map[string]any)["id"]; !ok || id != "R_1" {
		t.Error("data alongside errors must remain accessible")
	}
}

func TestDoMapsHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Bad credentials"}`, grafterrors.ErrInvalidToken},
		{"rate limited", http.StatusForbidden, `{"message":"API rate limit exceeded"}`, grafterrors.ErrRateLimit},
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`, grafterrors.ErrRepoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.do(context.Background(), "query {}", nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("do() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDoNetworkFailure(t *testing.T) {
	// Nothing listens on port 1; the dial is refused immediately.
	client := NewGraphQLClient("test-token", "http://127.0.0.1:1", zap.NewNop())

	_, err := client.do(context.Background(), "query {}", nil)
	if !errors.Is(err, grafterrors.ErrNetworkFailure) {
		t.Errorf("do() error = %v, want ErrNetworkFailure", err)
	}
}

func TestViewer(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"viewer":{"login":"octocat"}}}`))
	})

	login, err := client.Viewer(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if login != "octocat" {
		t.Errorf("login = %q, want octocat", login)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Messages: []string{"first", "second"}}
	msg := err.Error()
	if !strings.Contains(msg, "2 error(s)") || !strings.Contains(msg, "first; second") {
		t.Errorf("unexpected message: %q", msg)
	}
}
