// SPDX-License-Identifier: MPL-2.0

package serverbase

import (
	"context"
	"fmt"
	"sync"
)

// Lifecycle tracks one listener run: created, starting, running, then
// stopped or failed. It owns the context handed to background goroutines
// and waits for them on Shutdown.
//
// A Lifecycle is single-use.
type Lifecycle struct {
	mu     sync.Mutex
	state  State
	failed error
	cancel context.CancelFunc

	wg    sync.WaitGroup
	errCh chan error
}

// New returns a Lifecycle in StateCreated.
func New() *Lifecycle {
	return &Lifecycle{errCh: make(chan error, 1)}
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err delivers the first failure reported through Fail.
func (l *Lifecycle) Err() <-chan error {
	return l.errCh
}

// Failure returns the error passed to Fail, or nil.
func (l *Lifecycle) Failure() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed
}

// Begin moves Created to Starting and returns the context background work
// should run under. It is cancelled by Fail and Shutdown, not by ctx; ctx
// only aborts a start that has not happened yet.
func (l *Lifecycle) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		err = fmt.Errorf("start aborted: %w", err)
		l.Fail(err)
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateCreated {
		return nil, fmt.Errorf("cannot start listener in state %s", l.state)
	}
	l.state = StateStarting

	runCtx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	return runCtx, nil
}

// Running marks a successful start. It is a no-op unless Starting.
func (l *Lifecycle) Running() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStarting {
		l.state = StateRunning
	}
}

// Fail records err and cancels the run context. Only the first failure is
// kept. A listener already stopping finishes as Stopped.
func (l *Lifecycle) Fail(err error) {
	l.mu.Lock()
	if l.failed != nil {
		l.mu.Unlock()
		return
	}
	l.failed = err
	if l.state != StateStopping {
		l.state = StateFailed
	}
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.errCh <- err
}

// Go runs fn in a goroutine that Shutdown waits for.
func (l *Lifecycle) Go(fn func()) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
}

// Shutdown cancels the run context, waits for every Go goroutine and marks
// the listener Stopped. It reports false when nothing was running, which
// makes repeated calls safe.
func (l *Lifecycle) Shutdown() bool {
	l.mu.Lock()
	switch l.state {
	case StateCreated:
		l.state = StateStopped
		l.mu.Unlock()
		return false
	case StateStarting, StateRunning:
		l.state = StateStopping
	default:
		l.mu.Unlock()
		return false
	}
	cancel := l.cancel
	l.mu.Unlock()

	cancel()
	l.wg.Wait()

	l.mu.Lock()
	l.state = StateStopped
	l.mu.Unlock()
	return true
}
