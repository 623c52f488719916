// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers cover local sockets (ShortSocketPath), filesystem fixtures
// (MustWriteFile, MustMkdirAll), polling (Eventually) and resource cleanup
// (MustStop).
package testutil
