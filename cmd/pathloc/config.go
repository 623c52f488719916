// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/pathloc/pathloc/internal/config"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the `pathloc config` command tree.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pathloc configuration",
		Long: `Manage pathloc configuration.

Configuration is stored in:
  - Linux: ~/.config/pathloc/config.cue
  - macOS: ~/Library/Application Support/pathloc/config.cue
  - Windows: %APPDATA%\pathloc\config.cue

PATHLOC_* environment variables override the file, e.g.
PATHLOC_SOCKET_PATH or PATHLOC_LOG_LEVEL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context(), opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath(opts.loadOptions())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save config.cue.

Valid keys: socket_path, ui.color_scheme, ui.verbose, log.level,
open.absolute_paths.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.setConfigValue(cmd.Context(), opts, args[0], args[1])
		},
	})

	return cfgCmd
}

func (a *App) showConfig(ctx context.Context, opts *rootOptions) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return err
	}
	cfg := s.cfg

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(a.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)

	if s.cfgPath != "" {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), s.cfgPath)
	} else {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	addr, addrErr := s.addresses.LocalSocket()
	if addrErr != nil {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Instance address"), WarningStyle.Render(addrErr.Error()))
	} else {
		fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Instance address"), addr)
	}
	fmt.Fprintln(a.stdout)

	socketPath := SubtitleStyle.Render("(platform default)")
	if cfg.SocketPath != "" {
		socketPath = valueStyle.Render(cfg.SocketPath.String())
	}
	fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("socket_path"), socketPath)

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(a.stdout, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("open"))
	fmt.Fprintf(a.stdout, "  absolute_paths: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Open.AbsolutePaths)))

	return nil
}

func (a *App) initConfig(opts *rootOptions) error {
	path, created, err := config.CreateDefaultConfig(a.fs, opts.loadOptions())
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(a.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("•"), path)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func (a *App) setConfigValue(ctx context.Context, opts *rootOptions, key, value string) error {
	loadOpts := opts.loadOptions()

	path, err := config.FilePath(loadOpts)
	if err != nil {
		return err
	}

	// A missing file is created from defaults; an existing one is edited.
	cfg := config.DefaultConfig()
	if exists, _ := afero.Exists(a.fs, path.String()); exists {
		loaded, loadErr := a.Config.Load(ctx, loadOpts)
		if loadErr != nil {
			return loadErr
		}
		cfg = loaded.Config
	}

	if err := config.Set(cfg, key, value); err != nil {
		return err
	}

	if _, err := config.Save(a.fs, loadOpts, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(a.stdout, "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}
