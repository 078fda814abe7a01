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

package giterror

import "strings"

// IsAuth reports whether the error is an authentication or authorization failure.
func IsAuth(err error) bool {
	return matchesAny(err,
		"401",
		"403",
		"unauthorized",
		"forbidden",
		"bad credentials",
		"authentication",
	)
}

// IsNotFound reports whether the error indicates a missing repository or user.
func IsNotFound(err error) bool {
	return matchesAny(err,
		"404",
		"not found",
		"could not resolve to a repository",
		"could not resolve to a user",
	)
}

// IsRateLimit reports whether the error indicates the API rate limit was hit.
func IsRateLimit(err error) bool {
	return matchesAny(err,
		"429",
		"rate limit",
		"api rate limit exceeded",
	)
}

// IsNetwork reports whether the error is a network connectivity failure.
func IsNetwork(err error) bool {
	return matchesAny(err,
		"connection refused",
		"no such host",
		"timeout",
		"temporary failure",
		"dial tcp",
		"tls handshake",
		"network is unreachable",
	)
}

func matchesAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(message, fragment) {
			return true
		}
	}
	return false
}
