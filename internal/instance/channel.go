// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"context"
	"net"
)

type (
	// AddressResolver finds the local channel address of a running instance.
	AddressResolver interface {
		LocalSocket() (string, error)
	}

	// Dialer opens a connection to a local channel address.
	Dialer interface {
		Dial(ctx context.Context, addr string) (net.Conn, error)
	}

	// DialerFunc adapts a function to the Dialer interface.
	DialerFunc func(ctx context.Context, addr string) (net.Conn, error)

	// ListenFunc opens the listening side of a local channel.
	ListenFunc func(addr string) (net.Listener, error)

	// StaticAddress is an AddressResolver that always returns itself.
	StaticAddress string
)

// Dial calls f.
func (f DialerFunc) Dial(ctx context.Context, addr string) (net.Conn, error) {
	return f(ctx, addr)
}

// LocalSocket returns the address unchanged.
func (a StaticAddress) LocalSocket() (string, error) {
	return string(a), nil
}

// DefaultDialer returns the platform dialer: Unix domain sockets, or named
// pipes on Windows.
func DefaultDialer() Dialer {
	return DialerFunc(dialLocal)
}
