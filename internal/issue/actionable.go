// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
)

// ActionableError is a user-facing failure: the operation that failed, the
// file or address it touched and hints for getting past it.
type ActionableError struct {
	// Operation is a verb phrase such as "load configuration".
	Operation string
	// Resource is the config file or socket address involved (optional).
	Resource string
	// Suggestions are printed one per line under the message.
	Suggestions []string
	Cause       error
}

// Wrap attaches operation, resource and suggestions to err. It returns nil
// when err is nil so callers can wrap unconditionally.
func Wrap(err error, operation, resource string, suggestions ...string) error {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation:   operation,
		Resource:    resource,
		Suggestions: suggestions,
		Cause:       err,
	}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the message followed by the suggestions. Verbose output
// also lists every error below the cause, innermost last.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	for _, s := range e.Suggestions {
		sb.WriteString("\n  • ")
		sb.WriteString(s)
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\ncaused by:")
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			sb.WriteString("\n  - ")
			sb.WriteString(err.Error())
		}
	}
	return sb.String()
}
