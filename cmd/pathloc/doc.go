// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pathloc.
//
// The root command resolves PATH[:LINE[:COLUMN]] arguments and forwards them
// to a running editor instance. Subcommands print resolutions (resolve), act
// as the receiving end of the local channel (listen) and manage config.cue
// (config).
package cmd
