// SPDX-License-Identifier: MPL-2.0

// Package types holds small validated value types shared across pathloc:
// filesystem paths, line and column numbers, and process exit codes.
package types
