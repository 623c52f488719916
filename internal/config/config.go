// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pathloc/pathloc/internal/issue"
	"github.com/pathloc/pathloc/pkg/cueutil"
	"github.com/pathloc/pathloc/pkg/platform"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "pathloc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. PATHLOC_SOCKET_PATH or
	// PATHLOC_LOG_LEVEL.
	EnvPrefix = "PATHLOC"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the pathloc configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (types.FilesystemPath, error) {
	return configDirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func configDirFor(goos string, getenv func(string) string, homeDir func() (string, error)) (types.FilesystemPath, error) {
	var base string

	switch goos {
	case platform.Windows:
		base = getenv("APPDATA")
		if base == "" {
			base = filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		base = getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := homeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return types.FilesystemPath(filepath.Join(base, AppName)), nil
}

// FilePath returns the config file the given options point at, whether or not
// it exists.
func FilePath(opts LoadOptions) (types.FilesystemPath, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	dir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(filepath.Join(string(dir), ConfigFileName+"."+ConfigFileExt)), nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath types.FilesystemPath) (types.FilesystemPath, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadWithOptions performs option-driven config loading. The returned path is
// empty when no config file was found and defaults are in effect.
func loadWithOptions(ctx context.Context, fs afero.Fs, opts LoadOptions) (*Config, types.FilesystemPath, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := newViper()

	cfgPath, err := FilePath(opts)
	if err != nil {
		return nil, "", err
	}

	resolvedPath := types.FilesystemPath("")
	switch {
	case fileExists(fs, cfgPath):
		if err := loadCUEIntoViper(v, fs, cfgPath); err != nil {
			return nil, "", issue.Wrap(err, "load configuration", string(cfgPath),
				"Check that the file contains valid CUE syntax",
				"Verify the configuration values match the expected schema",
				"See 'pathloc config --help' for configuration options")
		}
		resolvedPath = cfgPath
	case opts.ConfigFilePath != "":
		// An explicit file must exist; the default location is optional.
		return nil, "", issue.Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath),
			"load configuration", string(opts.ConfigFilePath),
			"Verify the file path is correct",
			"Use 'pathloc config init --config <file>' to create it")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema, so the typed checks run here.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.Wrap(err, "validate configuration", "",
			"Check "+EnvPrefix+"_* environment variables for typos",
			"Run 'pathloc config dump' to see the effective configuration")
	}

	return &cfg, resolvedPath, nil
}

// newViper returns a viper instance seeded with defaults and wired to
// PATHLOC_* environment variables. Every key needs a default for
// AutomaticEnv to reach it through Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("socket_path", string(defaults.SocketPath))
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("log.level", string(defaults.Log.Level))
	v.SetDefault("open.absolute_paths", defaults.Open.AbsolutePaths)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadCUEIntoViper validates a CUE file against the #Config schema and merges
// its contents into Viper, keeping defaults for omitted fields.
func loadCUEIntoViper(v *viper.Viper, fs afero.Fs, path types.FilesystemPath) error {
	data, err := afero.ReadFile(fs, string(path))
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, "#Config",
		cueutil.WithFilename(string(path)))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(fs afero.Fs, path types.FilesystemPath) bool {
	info, err := fs.Stat(string(path))
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to the file selected by
// opts unless that file already exists. It reports the path and whether a
// file was written.
func CreateDefaultConfig(fs afero.Fs, opts LoadOptions) (types.FilesystemPath, bool, error) {
	cfgPath, err := FilePath(opts)
	if err != nil {
		return "", false, err
	}

	if _, err := fs.Stat(string(cfgPath)); err == nil {
		return cfgPath, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := writeConfig(fs, cfgPath, DefaultConfig()); err != nil {
		return "", false, err
	}
	return cfgPath, true, nil
}

// Save writes cfg to the file selected by opts, replacing its contents.
func Save(fs afero.Fs, opts LoadOptions, cfg *Config) (types.FilesystemPath, error) {
	cfgPath, err := FilePath(opts)
	if err != nil {
		return "", err
	}
	if err := writeConfig(fs, cfgPath, cfg); err != nil {
		return "", err
	}
	return cfgPath, nil
}

func writeConfig(fs afero.Fs, path types.FilesystemPath, cfg *Config) error {
	if err := fs.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, string(path), []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// pathloc configuration file\n")
	sb.WriteString("// Every field is optional. PATHLOC_* environment variables take precedence.\n\n")

	if cfg.SocketPath != "" {
		fmt.Fprintf(&sb, "socket_path: %q\n\n", cfg.SocketPath)
	}

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nopen: {\n")
	fmt.Fprintf(&sb, "\tabsolute_paths: %v\n", cfg.Open.AbsolutePaths)
	sb.WriteString("}\n")

	return sb.String()
}
