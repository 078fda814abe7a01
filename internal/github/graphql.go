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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/graphql"
	"go.uber.org/zap"

	grafterrors "github.com/sirseerhq/sirseer-graft/internal/errors"
	"github.com/sirseerhq/sirseer-graft/internal/giterror"
	"github.com/sirseerhq/sirseer-graft/pkg/version"
)

// GraphQLClient implements the GitHub Client interface using the GraphQL API.
// Paginated listings and mutations go through a raw query layer that keeps
// the full response envelope available, because callers need to act on the
// individual entries of the errors array. Fixed-shape lookups use a typed
// shurcooL/graphql client sharing the same authenticated transport.
type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	typed      *graphql.Client
	logger     *zap.Logger
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided
// token and endpoint. The client is configured with:
//   - Authentication on every request via the provided token
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Connection pooling tuned for sequential API calls
//
// No retry or timeout policy is applied; failures surface to the caller.
func NewGraphQLClient(token, endpoint string, logger *zap.Logger) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &GraphQLClient{
		endpoint:   endpoint,
		httpClient: httpClient,
		typed:      graphql.NewClient(endpoint, httpClient),
		logger:     logger,
	}
}

// queryError is one entry of a GraphQL errors array.
type queryError struct {
	Message string `json:"message"`
}

// queryResponse is the full decoded GraphQL response envelope. It is
// deliberately not unwrapped: callers are responsible for checking the
// Errors field before trusting Data.
type queryResponse struct {
	Data   map[string]any `json:"data"`
	Errors []queryError   `json:"errors"`
}

func (r *queryResponse) errorMessages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}
	return messages
}

// APIError reports a GraphQL response whose errors array was non-empty.
// Every message from the array is preserved so callers can log each one.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graphql response contained %d error(s): %s",
		len(e.Messages), strings.Join(e.Messages, "; "))
}

// do executes one GraphQL round trip: the literal query string and the
// variable mapping are posted as the request body, and the decoded
// envelope is returned with its errors array intact. Transport failures
// are mapped onto the sentinel error taxonomy and returned; there is no
// retry.
func (c *GraphQLClient) do(ctx context.Context, query string, variables map[string]any) (*queryResponse, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.mapError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapError(fmt.Errorf("graphql endpoint returned status %d: %s",
			resp.StatusCode, bytes.TrimSpace(body)))
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode graphql response: %w", err)
	}

	return &envelope, nil
}

// Viewer returns the login of the user the token authenticates as. Used
// by the list command when no user argument is given.
func (c *GraphQLClient) Viewer(ctx context.Context) (string, error) {
	var query struct {
		Viewer struct {
			Login graphql.String
		}
	}

	if err := c.typed.Query(ctx, &query, nil); err != nil {
		return "", c.mapError(err)
	}

	return string(query.Viewer.Login), nil
}

// mapError maps transport and HTTP-level errors to the sentinel error
// taxonomy with actionable messages.
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	// Rate limit first: GitHub reports it with 403 as well, which would
	// otherwise classify as an auth failure.
	if giterror.IsRateLimit(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", grafterrors.ErrRateLimit)
	}

	if giterror.IsAuth(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token: %w", grafterrors.ErrInvalidToken)
	}

	if giterror.IsNotFound(err) {
		return fmt.Errorf("repository or user not found. Please check the name and your access permissions: %w", grafterrors.ErrRepoNotFound)
	}

	if giterror.IsNetwork(err) {
		return fmt.Errorf("network error connecting to the GitHub API: %w", grafterrors.ErrNetworkFailure)
	}

	return err
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage on pathological responses.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds the authorization header and safety limits to HTTP requests.
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "token "+t.token)
	req.Header.Set("User-Agent", fmt.Sprintf("sirseer-graft/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit (10MB)
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024,
		}
	}

	return resp, nil
}
