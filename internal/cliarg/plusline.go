// SPDX-License-Identifier: MPL-2.0

package cliarg

import (
	"strconv"
	"strings"
)

// ParsePlusLine recognizes the "+N" argument that asks an editor to open at
// line N. It returns false for anything else; that is not an error.
func ParsePlusLine(token string) (uint, bool) {
	rest, ok := strings.CutPrefix(token, "+")
	if !ok {
		return 0, false
	}
	return parseNumber(rest)
}

// parseNumber parses a non-negative decimal integer. Signs, blanks and
// values that overflow uint are rejected.
func parseNumber(s string) (uint, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
