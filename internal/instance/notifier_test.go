// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/pathloc/pathloc/internal/location"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/spf13/afero"
)

type failingAddresses struct{ err error }

func (f failingAddresses) LocalSocket() (string, error) { return "", f.err }

// pipeDialer hands out the client end of a net.Pipe and decodes whatever the
// notifier writes on the server end.
type pipeDialer struct {
	addrs    []string
	received chan Notification
}

func newPipeDialer() *pipeDialer {
	return &pipeDialer{received: make(chan Notification, 1)}
}

func (d *pipeDialer) Dial(_ context.Context, addr string) (net.Conn, error) {
	d.addrs = append(d.addrs, addr)
	client, server := net.Pipe()
	go func() {
		defer func() { _ = server.Close() }()
		n, err := NewDecoder(server).Next()
		if err == nil {
			d.received <- n
		}
		close(d.received)
	}()
	return client, nil
}

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("project", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, filepath.Join("project", "main.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestNotify_SendsFoldersAndFiles(t *testing.T) {
	t.Parallel()

	dialer := newPipeDialer()
	n := NewNotifier(StaticAddress("/run/pathloc/local.sock"),
		WithDialer(dialer), WithFs(newTestFs(t)), WithAbsolutePaths(false))

	locs := []location.Location{
		location.FromPath("project"),
		location.FromPathAndPosition("project/main.go", 12, 4),
		location.FromPath("deleted.txt"),
	}
	if err := n.Notify(context.Background(), locs); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	got, ok := <-dialer.received
	if !ok {
		t.Fatal("no notification received")
	}
	if got.Method != MethodOpenPaths {
		t.Errorf("Method = %q, want %q", got.Method, MethodOpenPaths)
	}
	if len(got.Params.Folders) != 1 || got.Params.Folders[0] != "project" {
		t.Errorf("Folders = %q, want [project]", got.Params.Folders)
	}
	if len(got.Params.Files) != 1 || got.Params.Files[0] != "project/main.go" {
		t.Errorf("Files = %q, want [project/main.go]", got.Params.Files)
	}
	if len(dialer.addrs) != 1 || dialer.addrs[0] != "/run/pathloc/local.sock" {
		t.Errorf("dialed %q, want the resolved address once", dialer.addrs)
	}
}

func TestClassify_AbsolutePaths(t *testing.T) {
	t.Parallel()

	n := NewNotifier(StaticAddress("unused"), WithFs(newTestFs(t)))
	msg := n.Classify([]location.Location{
		location.FromPath("project"),
		location.FromPath(types.FilesystemPath(filepath.Join("project", "main.go"))),
	})

	wantFolder, _ := filepath.Abs("project")
	wantFile, _ := filepath.Abs(filepath.Join("project", "main.go"))
	if len(msg.Params.Folders) != 1 || msg.Params.Folders[0] != wantFolder {
		t.Errorf("Folders = %q, want [%s]", msg.Params.Folders, wantFolder)
	}
	if len(msg.Params.Files) != 1 || msg.Params.Files[0] != wantFile {
		t.Errorf("Files = %q, want [%s]", msg.Params.Files, wantFile)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	t.Parallel()

	msg := NewNotifier(StaticAddress("unused"), WithFs(afero.NewMemMapFs())).Classify(nil)
	if msg.Params.Folders == nil || msg.Params.Files == nil {
		t.Error("Classify(nil) should produce empty, non-nil lists")
	}
	if len(msg.Params.Folders)+len(msg.Params.Files) != 0 {
		t.Errorf("Classify(nil) = %+v, want no paths", msg.Params)
	}
}

func TestNotify_ChannelUnavailable(t *testing.T) {
	t.Parallel()

	dialer := newPipeDialer()
	cause := errors.New("no home directory")
	n := NewNotifier(failingAddresses{err: cause}, WithDialer(dialer), WithFs(afero.NewMemMapFs()))

	err := n.Notify(context.Background(), nil)
	if !errors.Is(err, ErrChannelUnavailable) || !errors.Is(err, ErrUnreachable) || !errors.Is(err, cause) {
		t.Fatalf("Notify() error = %v, want channel unavailable wrapping cause", err)
	}
	if len(dialer.addrs) != 0 {
		t.Error("Notify() must not dial without an address")
	}
}

func TestNotify_EmptyAddress(t *testing.T) {
	t.Parallel()

	n := NewNotifier(StaticAddress(""), WithDialer(newPipeDialer()), WithFs(afero.NewMemMapFs()))
	if err := n.Notify(context.Background(), nil); !errors.Is(err, ErrChannelUnavailable) {
		t.Errorf("Notify() error = %v, want ErrChannelUnavailable", err)
	}
}

func TestNotify_ConnectFailed(t *testing.T) {
	t.Parallel()

	refusing := DialerFunc(func(context.Context, string) (net.Conn, error) {
		return nil, syscall.ECONNREFUSED
	})
	n := NewNotifier(StaticAddress("/tmp/none.sock"), WithDialer(refusing), WithFs(afero.NewMemMapFs()))

	err := n.Notify(context.Background(), []location.Location{location.FromPath("x")})
	if !errors.Is(err, ErrConnectFailed) || !errors.Is(err, ErrUnreachable) {
		t.Fatalf("Notify() error = %v, want ErrConnectFailed", err)
	}
	var ue *UnreachableError
	if !errors.As(err, &ue) || ue.Addr != "/tmp/none.sock" {
		t.Errorf("UnreachableError.Addr = %v, want /tmp/none.sock", ue)
	}
}

func TestNotify_WriteFailed(t *testing.T) {
	t.Parallel()

	closed := DialerFunc(func(context.Context, string) (net.Conn, error) {
		client, server := net.Pipe()
		_ = server.Close()
		return client, nil
	})
	n := NewNotifier(StaticAddress("/tmp/x.sock"), WithDialer(closed), WithFs(afero.NewMemMapFs()))

	err := n.Notify(context.Background(), nil)
	if !errors.Is(err, ErrWriteFailed) || !errors.Is(err, ErrUnreachable) {
		t.Errorf("Notify() error = %v, want ErrWriteFailed", err)
	}
}
