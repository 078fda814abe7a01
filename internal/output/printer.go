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

package output

import (
	"fmt"
	"io"

	"github.com/sirseerhq/sirseer-graft/internal/github"
)

// ANSI escape sequences for emphasis.
const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Printer renders command results to a stream.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Repository writes one repository path on its own line.
func (p *Printer) Repository(nameWithOwner string) error {
	_, err := fmt.Fprintln(p.w, nameWithOwner)
	return err
}

// PullRequest writes one matched pull request as a block: a blank
// separator line, the bold title, the URL, and a bullet per changed
// file.
func (p *Printer) PullRequest(pr github.PullRequestInfo) error {
	if _, err := fmt.Fprintf(p.w, "\n%s\n%s\n", Bold(pr.Title), pr.URL); err != nil {
		return err
	}
	for _, file := range pr.ChangedFiles {
		if _, err := fmt.Fprintf(p.w, "- %s\n", file); err != nil {
			return err
		}
	}
	return nil
}

// Bold wraps s in ANSI bold escapes.
func Bold(s string) string {
	return ansiBold + s + ansiReset
}
