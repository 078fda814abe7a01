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

// Package giterror classifies errors returned by the GitHub API and its
// transport layer. GitHub reports many failures as free-form messages,
// sometimes with an HTTP status and sometimes only inside a GraphQL
// errors array, so classification falls back to message inspection.
// The results are used to map failures onto the sentinel errors in
// internal/errors and, from there, onto CLI exit codes.
package giterror
