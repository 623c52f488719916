// SPDX-License-Identifier: MPL-2.0

// Package location defines Location, a filesystem path with an optional
// line/column position, as produced from a single command-line argument.
package location
