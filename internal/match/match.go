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

// Package match builds predicates over the file paths changed by a pull
// request. Two pattern flavors are supported: simple exact-path matching
// and unanchored regular expressions.
package match

import "regexp"

// Matcher reports whether a single changed-file path satisfies a pattern.
type Matcher func(path string) bool

// Simple returns a matcher that compares the path literally. A leading
// slash on the pattern is stripped, since GitHub reports repository
// paths without one.
func Simple(pattern string) Matcher {
	pattern = trimLeadingSlash(pattern)
	return func(path string) bool {
		return path == pattern
	}
}

// Regexp returns a matcher that searches the path for the pattern,
// unanchored. The pattern is compiled once up front.
func Regexp(pattern string) (Matcher, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(path string) bool {
		return compiled.MatchString(path)
	}, nil
}

// FileSet combines per-file matchers into a predicate over a pull
// request's changed files. The pull request matches when at least one
// single file satisfies every matcher. With no matchers, any pull
// request that changed at least one file matches.
func FileSet(matchers ...Matcher) func(files []string) bool {
	return func(files []string) bool {
		for _, file := range files {
			if matchesAll(file, matchers) {
				return true
			}
		}
		return false
	}
}

func matchesAll(file string, matchers []Matcher) bool {
	for _, matcher := range matchers {
		if !matcher(file) {
			return false
		}
	}
	return true
}

func trimLeadingSlash(pattern string) string {
	if len(pattern) > 0 && pattern[0] == '/' {
		return pattern[1:]
	}
	return pattern
}
