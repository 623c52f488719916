// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and a catalogue of
// Markdown hints rendered with glamour (for example when no running instance answers).
package issue
