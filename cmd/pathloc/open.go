// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathloc/pathloc/internal/cliarg"
	"github.com/pathloc/pathloc/internal/instance"
)

// runOpen resolves args and hands them to the running instance. With
// printOnly the resolved locations are printed instead.
func (a *App) runOpen(ctx context.Context, opts *rootOptions, args []string, printOnly bool) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return err
	}

	resolver := cliarg.NewResolver(a.fs, cliarg.WithLogger(s.logger))
	locs := resolver.ResolveArgs(args)

	if printOnly {
		for _, loc := range locs {
			fmt.Fprintln(a.stdout, loc.String())
		}
		return nil
	}

	notifier := instance.NewNotifier(s.addresses,
		instance.WithDialer(a.dialer),
		instance.WithFs(a.fs),
		instance.WithNotifierLogger(s.logger),
		instance.WithAbsolutePaths(s.cfg.Open.AbsolutePaths),
	)
	if err := notifier.Notify(ctx, locs); err != nil {
		if errors.Is(err, instance.ErrUnreachable) {
			return a.unreachable(s, err)
		}
		return err
	}
	return nil
}
