// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/pathloc/pathloc/internal/issue"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the pathloc command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}
	var printOnly bool

	rootCmd := &cobra.Command{
		Use:   "pathloc [PATH[:LINE[:COLUMN]] | +LINE]...",
		Short: "Open paths with line and column in a running editor",
		Long: TitleStyle.Render("pathloc") + SubtitleStyle.Render(" - open paths with line and column in a running editor") + `

Each argument is a path, optionally followed by :LINE or :LINE:COLUMN.
Files that exist on disk win over suffix stripping, so a file literally
named "notes:12" opens as-is. A standalone +LINE applies to the next path.

` + SubtitleStyle.Render("Examples:") + `
  pathloc src/main.go:42        Open main.go at line 42
  pathloc src/main.go:42:7      Open main.go at line 42, column 7
  pathloc +42 src/main.go       Same as src/main.go:42
  pathloc --print a.go:1 dir/   Print resolved locations without sending
  pathloc listen                Receive open requests (debugging aid)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.runOpen(cmd.Context(), opts, args, printOnly)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pathloc/config.cue)")
	rootCmd.PersistentFlags().StringVar(&opts.socket, "socket", "", "address of the running instance (overrides socket_path)")
	rootCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print resolved locations instead of sending them")

	rootCmd.AddCommand(newResolveCommand(app, opts))
	rootCmd.AddCommand(newListenCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the production App and runs the root command.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	os.Exit(int(exitCode(err)))
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
