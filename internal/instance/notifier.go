// SPDX-License-Identifier: MPL-2.0

package instance

import (
	"context"
	"io"

	"github.com/pathloc/pathloc/internal/location"
	"github.com/pathloc/pathloc/pkg/fspath"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// Notifier forwards locations to a running instance.
	Notifier struct {
		addresses     AddressResolver
		dialer        Dialer
		fs            afero.Fs
		logger        *log.Logger
		absolutePaths bool
	}

	// NotifierOption configures a Notifier.
	NotifierOption func(*Notifier)
)

// WithDialer replaces the platform dialer.
func WithDialer(d Dialer) NotifierOption {
	return func(n *Notifier) {
		n.dialer = d
	}
}

// WithFs replaces the filesystem used to classify paths.
func WithFs(fs afero.Fs) NotifierOption {
	return func(n *Notifier) {
		n.fs = fs
	}
}

// WithNotifierLogger sets the logger.
func WithNotifierLogger(l *log.Logger) NotifierOption {
	return func(n *Notifier) {
		n.logger = l
	}
}

// WithAbsolutePaths controls whether paths are made absolute before sending.
// It defaults to true; the receiving instance has a different working
// directory.
func WithAbsolutePaths(enabled bool) NotifierOption {
	return func(n *Notifier) {
		n.absolutePaths = enabled
	}
}

// NewNotifier creates a Notifier that looks up the channel address with
// addresses.
func NewNotifier(addresses AddressResolver, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		addresses:     addresses,
		dialer:        DefaultDialer(),
		fs:            afero.NewOsFs(),
		logger:        log.New(io.Discard),
		absolutePaths: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify sends one OpenPaths notification for locs. Directories go to
// folders, regular files to files; anything else is dropped, and line/column
// positions are not transmitted. It performs one connect and one write with
// no timeout or retry. Every failure is an *UnreachableError.
func (n *Notifier) Notify(ctx context.Context, locs []location.Location) error {
	addr, err := n.addresses.LocalSocket()
	if err != nil {
		return &UnreachableError{Kind: FailureChannelUnavailable, Err: err}
	}
	if addr == "" {
		return &UnreachableError{Kind: FailureChannelUnavailable}
	}

	conn, err := n.dialer.Dial(ctx, addr)
	if err != nil {
		n.logger.Debug("no instance listening", "addr", addr, "err", err)
		return &UnreachableError{Kind: FailureConnectFailed, Addr: addr, Err: err}
	}
	defer func() { _ = conn.Close() }()

	msg := n.Classify(locs)
	if err := Encode(conn, msg); err != nil {
		return &UnreachableError{Kind: FailureWriteFailed, Addr: addr, Err: err}
	}

	n.logger.Info("sent paths to running instance",
		"addr", addr, "folders", len(msg.Params.Folders), "files", len(msg.Params.Files))
	return nil
}

// Classify builds the OpenPaths notification for locs without sending it.
func (n *Notifier) Classify(locs []location.Location) Notification {
	var folders, files []string
	for _, loc := range locs {
		p := loc.Path()
		info, err := n.fs.Stat(string(p))
		if err != nil {
			n.logger.Debug("dropping path", "path", p, "err", err)
			continue
		}

		switch {
		case info.IsDir():
			folders = append(folders, n.wirePath(p))
		case info.Mode().IsRegular():
			files = append(files, n.wirePath(p))
		default:
			n.logger.Debug("dropping path that is neither file nor directory", "path", p)
		}
	}
	return NewOpenPaths(folders, files)
}

func (n *Notifier) wirePath(p types.FilesystemPath) string {
	if !n.absolutePaths {
		return string(p)
	}
	abs, err := fspath.Abs(p)
	if err != nil {
		n.logger.Warn("keeping relative path", "path", p, "err", err)
		return string(p)
	}
	return string(abs)
}
