// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema.
//
// The flow is the same for every caller:
//
//  1. Compile the embedded schema and look up the root definition
//  2. Compile user data and unify it with that definition
//  3. Validate and decode the result
//
// Errors carry JSON-path style locations (for example
// "config.cue: ui.color_scheme: 2 errors in empty disjunction").
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema string
//
//	values, err := cueutil.DecodeMap(schema, data, "#Config",
//	    cueutil.WithFilename("config.cue"))
//	if err != nil {
//	    return err
//	}
package cueutil
