// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/pathloc/pathloc/internal/core/serverbase"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

type (
	// Receiver is the listening side of the local channel. It decodes
	// notifications from every connection and delivers them in arrival
	// order per connection.
	//
	// A Receiver is single-use: once stopped or failed, create a new one.
	Receiver struct {
		life *serverbase.Lifecycle

		addr   string
		listen ListenFunc
		logger *log.Logger

		listener      net.Listener
		notifications chan Notification

		connsMu sync.Mutex
		conns   map[net.Conn]struct{}
		closed  bool
	}

	// ReceiverOption configures a Receiver.
	ReceiverOption func(*Receiver)
)

// WithListenFunc replaces the platform listener.
func WithListenFunc(fn ListenFunc) ReceiverOption {
	return func(r *Receiver) {
		r.listen = fn
	}
}

// WithReceiverLogger sets the logger.
func WithReceiverLogger(l *log.Logger) ReceiverOption {
	return func(r *Receiver) {
		r.logger = l
	}
}

// NewReceiver creates a Receiver for addr. Nothing is opened until Start.
func NewReceiver(addr string, opts ...ReceiverOption) *Receiver {
	r := &Receiver{
		life:          serverbase.New(),
		addr:          addr,
		listen:        Listen,
		logger:        log.New(io.Discard),
		notifications: make(chan Notification),
		conns:         make(map[net.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Addr returns the address the receiver listens on.
func (r *Receiver) Addr() string {
	return r.addr
}

// State returns the lifecycle state.
func (r *Receiver) State() serverbase.State {
	return r.life.State()
}

// Err returns the channel receiving fatal accept-loop errors.
func (r *Receiver) Err() <-chan error {
	return r.life.Err()
}

// Notifications returns the channel of decoded notifications. It is closed
// once the receiver has stopped.
func (r *Receiver) Notifications() <-chan Notification {
	return r.notifications
}

// Start opens the listener and begins accepting connections in the
// background. It returns once the receiver is running.
func (r *Receiver) Start(ctx context.Context) error {
	runCtx, err := r.life.Begin(ctx)
	if err != nil {
		return err
	}

	l, err := r.listen(r.addr)
	if err != nil {
		err = fmt.Errorf("failed to listen on %s: %w", r.addr, err)
		r.life.Fail(err)
		return err
	}
	r.listener = l

	r.life.Go(func() { r.serve(runCtx) })
	r.life.Running()
	r.logger.Info("listening for open requests", "addr", r.addr)
	return nil
}

// Stop closes the listener and every open connection, waits for the
// background goroutines and closes Notifications.
func (r *Receiver) Stop() error {
	r.life.Shutdown()
	return nil
}

func (r *Receiver) serve(ctx context.Context) {
	defer close(r.notifications)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		_ = r.listener.Close()
		r.closeConns()
		return nil
	})

	g.Go(func() error {
		for {
			conn, err := r.listener.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("accept failed: %w", err)
			}
			if !r.trackConn(conn) {
				continue
			}
			g.Go(func() error {
				defer r.untrackConn(conn)
				r.handle(gctx, conn)
				return nil
			})
		}
	})

	if err := g.Wait(); err != nil {
		r.logger.Error("receiver stopped", "err", err)
		r.life.Fail(err)
	}
}

func (r *Receiver) handle(ctx context.Context, conn net.Conn) {
	defer func() { _ = conn.Close() }()

	dec := NewDecoder(conn)
	for {
		n, err := dec.Next()
		switch {
		case err == nil:
		case errors.Is(err, ErrInvalidMethod):
			r.logger.Warn("ignoring notification", "method", n.Method)
			continue
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			return
		default:
			r.logger.Warn("dropping connection", "err", err)
			return
		}

		select {
		case r.notifications <- n:
		case <-ctx.Done():
			return
		}
	}
}

// trackConn registers conn for shutdown. It closes conn and returns false
// when shutdown already began.
func (r *Receiver) trackConn(conn net.Conn) bool {
	r.connsMu.Lock()
	defer r.connsMu.Unlock()
	if r.closed {
		_ = conn.Close()
		return false
	}
	r.conns[conn] = struct{}{}
	return true
}

func (r *Receiver) untrackConn(conn net.Conn) {
	r.connsMu.Lock()
	defer r.connsMu.Unlock()
	delete(r.conns, conn)
}

func (r *Receiver) closeConns() {
	r.connsMu.Lock()
	defer r.connsMu.Unlock()
	r.closed = true
	for conn := range r.conns {
		_ = conn.Close()
	}
}
