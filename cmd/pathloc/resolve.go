// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pathloc/pathloc/internal/cliarg"
	"github.com/pathloc/pathloc/internal/location"

	"github.com/spf13/cobra"
)

// resolvedLocation is the --json form of a location, one object per line.
type resolvedLocation struct {
	Path   string `json:"path"`
	Line   *uint  `json:"line,omitempty"`
	Column *uint  `json:"column,omitempty"`
}

func newResolveCommand(app *App, opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve [PATH[:LINE[:COLUMN]] | +LINE]...",
		Short: "Print how arguments resolve, one location per line",
		Long: `Print how arguments resolve, one location per line.

Nothing is sent to a running instance. Use --json for machine-readable
output (one JSON object per line).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runResolve(cmd.Context(), opts, args, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per location")

	return cmd
}

func (a *App) runResolve(ctx context.Context, opts *rootOptions, args []string, asJSON bool) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return err
	}

	locs := cliarg.NewResolver(a.fs, cliarg.WithLogger(s.logger)).ResolveArgs(args)

	if !asJSON {
		for _, loc := range locs {
			fmt.Fprintln(a.stdout, loc.String())
		}
		return nil
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetEscapeHTML(false)
	for _, loc := range locs {
		if err := enc.Encode(toResolved(loc)); err != nil {
			return fmt.Errorf("failed to write location: %w", err)
		}
	}
	return nil
}

func toResolved(loc location.Location) resolvedLocation {
	out := resolvedLocation{Path: loc.Path().String()}
	if lc, ok := loc.LineCol(); ok {
		out.Line, out.Column = &lc.Line, &lc.Column
	}
	return out
}
