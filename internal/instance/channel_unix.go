// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package instance

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"
)

// ErrAlreadyListening is returned by Listen when another process already
// accepts connections at the address.
var ErrAlreadyListening = errors.New("another instance is already listening")

func dialLocal(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", addr)
}

// Listen creates the socket directory if needed, removes a stale socket
// file left by a crashed instance, and listens on addr.
func Listen(addr string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(addr), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	if _, err := os.Stat(addr); err == nil {
		conn, dialErr := net.DialTimeout("unix", addr, time.Second)
		if dialErr == nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %s", ErrAlreadyListening, addr)
		}
		if err := os.Remove(addr); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	return net.Listen("unix", addr)
}
