// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"errors"
	"fmt"
)

const (
	// FailureChannelUnavailable means no local channel address was known.
	FailureChannelUnavailable FailureKind = iota + 1
	// FailureConnectFailed means nothing listened at the address.
	FailureConnectFailed
	// FailureWriteFailed means the notification could not be written.
	FailureWriteFailed
)

var (
	// ErrUnreachable matches every Notify failure. Callers that only need
	// to know whether to start a new instance test for this one.
	ErrUnreachable = errors.New("could not reach an existing instance")

	// ErrChannelUnavailable matches FailureChannelUnavailable errors.
	ErrChannelUnavailable = errors.New("local channel unavailable")
	// ErrConnectFailed matches FailureConnectFailed errors.
	ErrConnectFailed = errors.New("connect failed")
	// ErrWriteFailed matches FailureWriteFailed errors.
	ErrWriteFailed = errors.New("write failed")
)

type (
	// FailureKind tells which Notify step failed.
	FailureKind int

	// UnreachableError is returned by Notifier.Notify. It matches
	// ErrUnreachable, the sentinel for its Kind, and its cause.
	UnreachableError struct {
		Kind FailureKind
		// Addr is the channel address; empty for FailureChannelUnavailable.
		Addr string
		Err  error
	}
)

// String returns a short name for the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureChannelUnavailable:
		return "channel unavailable"
	case FailureConnectFailed:
		return "connect failed"
	case FailureWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureChannelUnavailable:
		return ErrChannelUnavailable
	case FailureConnectFailed:
		return ErrConnectFailed
	case FailureWriteFailed:
		return ErrWriteFailed
	default:
		return nil
	}
}

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	msg := ErrUnreachable.Error() + ": " + e.Kind.String()
	if e.Addr != "" {
		msg += fmt.Sprintf(" (%s)", e.Addr)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrUnreachable, the kind sentinel and the cause.
func (e *UnreachableError) Unwrap() []error {
	errs := []error{ErrUnreachable}
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
