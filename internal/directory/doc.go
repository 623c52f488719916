// SPDX-License-Identifier: MPL-2.0

// Package directory resolves the platform-specific address of the local
// channel a running instance listens on: a Unix domain socket on Linux and
// macOS, a named pipe on Windows.
package directory
