// SPDX-License-Identifier: MPL-2.0

package cliarg

import "strings"

// JoinWithSeparator concatenates segments in order, writing sep after every
// segment including the last one. An empty input yields "".
func JoinWithSeparator(segments []string, sep string) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s)
		sb.WriteString(sep)
	}
	return sb.String()
}

// JoinPrefix joins segments with sep and trims the single trailing separator
// left by JoinWithSeparator.
func JoinPrefix(segments []string, sep string) string {
	return strings.TrimSuffix(JoinWithSeparator(segments, sep), sep)
}
