// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It names the runtime.GOOS values that select per-OS config and socket
// directories.
package platform
