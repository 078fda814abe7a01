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

// Package jsonpath extracts values from decoded JSON objects using
// dot-separated paths. Keys are matched literally, never as patterns.
//
// A path segment that is absent is reported as not found. A key that is
// present with an explicit JSON null is reported as found with a nil
// value: GitHub's GraphQL API legitimately returns null for absent
// relations (for example a ref that does not exist), and that must not
// be conflated with a malformed response.
package jsonpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingPath indicates a required path was absent from the document.
var ErrMissingPath = errors.New("expected path missing")

// Lookup walks data key by key along the dot-separated path. It returns
// the value at the deepest key and whether every segment was present.
// An intermediate segment that is null or not an object terminates the
// walk as not found.
func Lookup(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, key := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, present := object[key]
		if !present {
			return nil, false
		}
		current = value
	}
	return current, true
}

// LookupRequired behaves like Lookup but fails with ErrMissingPath when
// any segment of the path is absent.
func LookupRequired(data map[string]any, path string) (any, error) {
	value, found := Lookup(data, path)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrMissingPath, path)
	}
	return value, nil
}

// String returns the string value at path. It reports false when the
// path is absent, null, or holds a non-string value.
func String(data map[string]any, path string) (string, bool) {
	value, found := Lookup(data, path)
	if !found {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// Bool returns the boolean value at path. It reports false when the
// path is absent, null, or holds a non-boolean value.
func Bool(data map[string]any, path string) (bool, bool) {
	value, found := Lookup(data, path)
	if !found {
		return false, false
	}
	flag, ok := value.(bool)
	return flag, ok
}
