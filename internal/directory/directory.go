// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pathloc/pathloc/pkg/platform"
)

const (
	// AppName is the directory and pipe name component.
	AppName = "pathloc"
	// SocketFileName is the socket file created inside the data directory.
	SocketFileName = "local.sock"
)

// ErrNoSocketDir is returned when no directory can host the local socket.
var ErrNoSocketDir = errors.New("cannot determine local socket directory")

// Directory resolves local channel addresses. The zero value uses the
// platform defaults.
type Directory struct {
	// SocketOverride, when set, is returned verbatim by LocalSocket.
	SocketOverride string

	goos    string
	getenv  func(string) string
	homeDir func() (string, error)
}

// New returns a Directory honoring override when it is non-empty.
func New(override string) *Directory {
	return &Directory{SocketOverride: override}
}

// LocalSocket returns the address a running instance listens on.
func (d *Directory) LocalSocket() (string, error) {
	if d.SocketOverride != "" {
		return d.SocketOverride, nil
	}

	goos, getenv, homeDir := d.env()
	if goos == platform.Windows {
		user := getenv("USERNAME")
		if user == "" {
			user = "default"
		}
		return `\\.\pipe\` + AppName + "-" + sanitizePipeComponent(user), nil
	}

	dir, err := dataDir(goos, getenv, homeDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SocketFileName), nil
}

func (d *Directory) env() (string, func(string) string, func() (string, error)) {
	goos, getenv, homeDir := d.goos, d.getenv, d.homeDir
	if goos == "" {
		goos = runtime.GOOS
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	return goos, getenv, homeDir
}

// dataDir picks the per-user directory holding the socket. On Linux and
// other Unixes the runtime dir is preferred since it is private to the user
// and cleared at logout.
func dataDir(goos string, getenv func(string) string, homeDir func() (string, error)) (string, error) {
	if goos == platform.Darwin {
		home, err := homeDir()
		if err != nil || home == "" {
			return "", fmt.Errorf("%w: %v", ErrNoSocketDir, err)
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil
	}

	if runtimeDir := getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, AppName), nil
	}
	if dataHome := getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, AppName), nil
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", ErrNoSocketDir, err)
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

func sanitizePipeComponent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\\' || r == '/' || r == ':' {
			return '_'
		}
		return r
	}, s)
}
