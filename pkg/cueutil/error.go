// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"slices"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError flattens a CUE error into "<file>: <json-path>: <message>"
// lines, for example:
//
//	config.cue: ui.color_scheme: 3 errors in empty disjunction
//	config.cue: open.absolute_paths: conflicting values true and "yes"
//
// Errors that are not CUE errors are wrapped with the file name only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	// errors.Errors promotes any error to a one-element list, so plain
	// errors are told apart first to keep them unwrappable.
	var cueErr errors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	cueErrors := errors.Errors(err)
	lines := make([]string, 0, len(cueErrors))
	for _, e := range cueErrors {
		format, args := e.Msg()
		line := fmt.Sprintf(format, args...)
		if pathStr := formatPath(errors.Path(e)); pathStr != "" {
			line = pathStr + ": " + line
		}
		line = filePath + ": " + line
		if !slices.Contains(lines, line) {
			lines = append(lines, line)
		}
	}

	return &ValidationError{Lines: lines, cause: err}
}

// ValidationError holds one "<file>: <path>: <message>" line per CUE error.
type ValidationError struct {
	Lines []string
	cause error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Lines, "\n")
}

// Unwrap returns the CUE error the lines were built from.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// formatPath turns a CUE path such as ["#Config", "open", "0", "x"] into
// "open[0].x". The leading schema definition is not part of the user's file.
func formatPath(path []string) string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	var result strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			result.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			result.WriteString(".")
		}
		result.WriteString(part)
	}
	return result.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
