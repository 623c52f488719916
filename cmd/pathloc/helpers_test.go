// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"

	"github.com/pathloc/pathloc/internal/config"
	"github.com/pathloc/pathloc/internal/instance"
	"github.com/pathloc/pathloc/internal/testutil"

	"github.com/spf13/afero"
)

// syncBuffer is a bytes.Buffer safe for a command writing while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// staticConfig is a ConfigProvider returning a fixed result.
type staticConfig struct {
	loaded *config.Loaded
	err    error
}

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Loaded, error) {
	return s.loaded, s.err
}

func defaultsProvider() staticConfig {
	return staticConfig{loaded: &config.Loaded{Config: config.DefaultConfig()}}
}

// pipeDialer records dialed addresses and decodes what is written on the
// server end of a net.Pipe.
type pipeDialer struct {
	mu       sync.Mutex
	addrs    []string
	received chan instance.Notification
}

func newPipeDialer() *pipeDialer {
	return &pipeDialer{received: make(chan instance.Notification, 1)}
}

func (d *pipeDialer) Dial(_ context.Context, addr string) (net.Conn, error) {
	d.mu.Lock()
	d.addrs = append(d.addrs, addr)
	d.mu.Unlock()

	client, server := net.Pipe()
	go func() {
		defer func() { _ = server.Close() }()
		if n, err := instance.NewDecoder(server).Next(); err == nil {
			d.received <- n
		}
	}()
	return client, nil
}

type testApp struct {
	app    *App
	stdout *syncBuffer
	stderr *syncBuffer
}

func newTestApp(t *testing.T, deps Dependencies) *testApp {
	t.Helper()

	ta := &testApp{stdout: &syncBuffer{}, stderr: &syncBuffer{}}
	deps.Stdout, deps.Stderr = ta.stdout, ta.stderr
	if deps.Fs == nil {
		deps.Fs = afero.NewMemMapFs()
	}
	if deps.Config == nil {
		deps.Config = defaultsProvider()
	}
	ta.app = NewApp(deps)
	return ta
}

func (ta *testApp) run(ctx context.Context, args ...string) error {
	root := NewRootCommand(ta.app)
	root.SetArgs(args)
	root.SetOut(ta.stdout)
	root.SetErr(ta.stderr)
	return root.ExecuteContext(ctx)
}

func writeTestFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	testutil.MustWriteFile(t, fs, path, "x\n")
}
