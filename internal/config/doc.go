// SPDX-License-Identifier: MPL-2.0

// Package config handles pathloc configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/pathloc on Linux, ~/Library/Application Support/pathloc on
// macOS, %APPDATA%\pathloc on Windows) or from an explicit file. The file is
// validated against the embedded config_schema.cue before it is merged over the
// defaults, and PATHLOC_* environment variables override both.
package config
