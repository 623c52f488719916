// SPDX-License-Identifier: MPL-2.0

// Package cliarg turns raw command-line path arguments into locations.
//
// An argument may be a plain path, PATH:LINE or PATH:LINE:COLUMN. Because
// colons are legal in file names and trailing digit groups may belong to the
// name itself, the Resolver decides between the readings by asking the
// filesystem which candidate actually exists. The standalone "+LINE" editor
// convention is recognized separately by ParsePlusLine.
package cliarg
