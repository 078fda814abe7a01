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

package match

import "testing"

func TestSimple(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"exact match", "src/main.go", "src/main.go", true},
		{"different file", "src/other.go", "src/main.go", false},
		{"no substring matching", "main.go", "src/main.go", false},
		{"leading slash is stripped", "/src/main.go", "src/main.go", true},
		{"case sensitive", "SRC/main.go", "src/main.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simple(tt.pattern)(tt.path); got != tt.want {
				t.Errorf("Simple(%q)(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestRegexp(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"unanchored search", "main", "src/main.go", true},
		{"anchor respected", "^main", "src/main.go", false},
		{"character class", `\.go$`, "src/main.go", true},
		{"no match", "docs/", "src/main.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, err := Regexp(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected compile error: %v", err)
			}
			if got := matcher(tt.path); got != tt.want {
				t.Errorf("Regexp(%q)(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestRegexpCompileError(t *testing.T) {
	if _, err := Regexp("("); err == nil {
		t.Fatal("expected compile error for invalid pattern, got nil")
	}
}

func TestFileSet(t *testing.T) {
	files := []string{"docs/readme.md", "src/main.go"}

	tests := []struct {
		name     string
		matchers []Matcher
		files    []string
		want     bool
	}{
		{
			name:     "single matching pattern",
			matchers: []Matcher{Simple("src/main.go")},
			files:    files,
			want:     true,
		},
		{
			name:     "single non-matching pattern",
			matchers: []Matcher{Simple("src/other.go")},
			files:    files,
			want:     false,
		},
		{
			name:     "all patterns must hit the same file",
			matchers: []Matcher{Simple("src/main.go"), Simple("docs/readme.md")},
			files:    files,
			want:     false,
		},
		{
			name: "multiple patterns satisfied by one file",
			matchers: []Matcher{
				mustRegexp(t, "src/"),
				mustRegexp(t, `\.go$`),
			},
			files: files,
			want:  true,
		},
		{
			name:     "no matchers matches any PR with files",
			matchers: nil,
			files:    files,
			want:     true,
		},
		{
			name:     "no matchers but no files",
			matchers: nil,
			files:    nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileSet(tt.matchers...)(tt.files); got != tt.want {
				t.Errorf("FileSet(...)(%v) = %v, want %v", tt.files, got, tt.want)
			}
		})
	}
}

func mustRegexp(t *testing.T, pattern string) Matcher {
	t.Helper()
	matcher, err := Regexp(pattern)
	if err != nil {
		t.Fatalf("failed to compile %q: %v", pattern, err)
	}
	return matcher
}
