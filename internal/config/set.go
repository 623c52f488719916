// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pathloc/pathloc/pkg/types"
)

var (
	// ErrUnknownKey is returned by Set for keys outside Keys().
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue is returned by Set when a value does not parse for its key.
	ErrInvalidValue = errors.New("invalid configuration value")
)

type (
	// UnknownKeyError names the rejected key.
	UnknownKeyError struct {
		Key string
	}

	// InvalidValueError names the key and the rejected value.
	InvalidValueError struct {
		Key   string
		Value string
		Err   error
	}
)

// Keys lists the keys accepted by Set, in the order they appear in config.cue.
func Keys() []string {
	return []string{"socket_path", "ui.color_scheme", "ui.verbose", "log.level", "open.absolute_paths"}
}

// Set assigns value to the field named by key (dotted, as in config.cue).
// An empty value for socket_path clears the override.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "socket_path":
		p := types.FilesystemPath(value)
		if p != "" {
			if err := p.Validate(); err != nil {
				return &InvalidValueError{Key: key, Value: value, Err: err}
			}
		}
		cfg.SocketPath = p

	case "ui.color_scheme":
		scheme := ColorScheme(value)
		if err := scheme.Validate(); err != nil {
			return &InvalidValueError{Key: key, Value: value, Err: err}
		}
		cfg.UI.ColorScheme = scheme

	case "ui.verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &InvalidValueError{Key: key, Value: value, Err: err}
		}
		cfg.UI.Verbose = b

	case "log.level":
		level := LogLevel(value)
		if err := level.Validate(); err != nil {
			return &InvalidValueError{Key: key, Value: value, Err: err}
		}
		cfg.Log.Level = level

	case "open.absolute_paths":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &InvalidValueError{Key: key, Value: value, Err: err}
		}
		cfg.Open.AbsolutePaths = b

	default:
		return &UnknownKeyError{Key: key}
	}
	return nil
}

// Error implements the error interface for UnknownKeyError.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown configuration key %q (valid keys: %s)", e.Key, strings.Join(Keys(), ", "))
}

// Unwrap returns ErrUnknownKey for errors.Is() compatibility.
func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }

// Error implements the error interface for InvalidValueError.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

// Unwrap returns ErrInvalidValue and the underlying parse or validation error.
func (e *InvalidValueError) Unwrap() []error { return []error{ErrInvalidValue, e.Err} }
