// SPDX-License-Identifier: MPL-2.0

//go:build windows

package instance

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
)

// ErrAlreadyListening is returned by Listen when another process already
// owns the pipe.
var ErrAlreadyListening = errors.New("another instance is already listening")

func dialLocal(ctx context.Context, addr string) (net.Conn, error) {
	return winio.DialPipeContext(ctx, addr)
}

// Listen creates the named pipe addr. The pipe is restricted to the current
// user by the default security descriptor.
func Listen(addr string) (net.Listener, error) {
	if conn, err := winio.DialPipe(addr, nil); err == nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyListening, addr)
	}
	l, err := winio.ListenPipe(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on pipe: %w", err)
	}
	return l, nil
}
