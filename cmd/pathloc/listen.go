// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/pathloc/pathloc/internal/instance"
	"github.com/pathloc/pathloc/internal/issue"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/spf13/cobra"
)

func newListenCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Receive open requests on the local socket and print them",
		Long: `Receive open requests on the local socket and print them.

listen plays the part of a running editor: it owns the local socket (or
named pipe on Windows) and prints every OpenPaths notification it receives
until interrupted. Useful to check what pathloc sends, or to test another
sender.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runListen(cmd.Context(), opts)
		},
	}
}

func (a *App) runListen(ctx context.Context, opts *rootOptions) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return err
	}

	addr, err := s.addresses.LocalSocket()
	if err != nil {
		a.renderIssue(issue.SocketDirUnavailableId, s.cfg.UI.ColorScheme)
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	receiver := instance.NewReceiver(addr, instance.WithReceiverLogger(s.logger))
	if err := receiver.Start(ctx); err != nil {
		a.renderIssue(issue.ListenFailedId, s.cfg.UI.ColorScheme)
		return issue.Wrap(err, "listen on local socket", addr,
			"Stop the other listener or pass --socket with a free address")
	}

	fmt.Fprintf(a.stdout, "%s %s\n", TitleStyle.Render("Listening on"), CmdStyle.Render(addr))

	for {
		select {
		case <-ctx.Done():
			return receiver.Stop()
		case n, ok := <-receiver.Notifications():
			if !ok {
				// Closed without Stop: the receiver failed.
				select {
				case err := <-receiver.Err():
					return err
				default:
					return nil
				}
			}
			a.printNotification(n)
		}
	}
}

func (a *App) printNotification(n instance.Notification) {
	fmt.Fprintln(a.stdout, SubtitleStyle.Render(string(n.Method)))
	for _, folder := range n.Params.Folders {
		fmt.Fprintf(a.stdout, "  %s %s\n", SuccessStyle.Render("folder"), folder)
	}
	for _, file := range n.Params.Files {
		fmt.Fprintf(a.stdout, "  %s %s\n", SuccessStyle.Render("file"), file)
	}
}
