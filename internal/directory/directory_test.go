// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pathloc/pathloc/pkg/platform"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLocalSocket(t *testing.T) {
	t.Parallel()

	home := func() (string, error) { return filepath.FromSlash("/home/pj"), nil }
	noHome := func() (string, error) { return "", errors.New("no home") }

	tests := []struct {
		name    string
		dir     *Directory
		want    string
		wantErr error
	}{
		{
			name: "override wins",
			dir:  &Directory{SocketOverride: "/tmp/custom.sock", goos: platform.Linux, homeDir: noHome},
			want: "/tmp/custom.sock",
		},
		{
			name: "linux runtime dir",
			dir: &Directory{
				goos:    platform.Linux,
				getenv:  fakeEnv(map[string]string{"XDG_RUNTIME_DIR": filepath.FromSlash("/run/user/1000")}),
				homeDir: home,
			},
			want: filepath.Join(filepath.FromSlash("/run/user/1000"), AppName, SocketFileName),
		},
		{
			name: "linux data home",
			dir: &Directory{
				goos:    platform.Linux,
				getenv:  fakeEnv(map[string]string{"XDG_DATA_HOME": filepath.FromSlash("/data")}),
				homeDir: home,
			},
			want: filepath.Join(filepath.FromSlash("/data"), AppName, SocketFileName),
		},
		{
			name: "linux home fallback",
			dir:  &Directory{goos: platform.Linux, getenv: fakeEnv(nil), homeDir: home},
			want: filepath.Join(filepath.FromSlash("/home/pj"), ".local", "share", AppName, SocketFileName),
		},
		{
			name:    "linux without home",
			dir:     &Directory{goos: platform.Linux, getenv: fakeEnv(nil), homeDir: noHome},
			wantErr: ErrNoSocketDir,
		},
		{
			name: "darwin application support",
			dir:  &Directory{goos: platform.Darwin, getenv: fakeEnv(nil), homeDir: home},
			want: filepath.Join(filepath.FromSlash("/home/pj"), "Library", "Application Support", AppName, SocketFileName),
		},
		{
			name:    "darwin without home",
			dir:     &Directory{goos: platform.Darwin, getenv: fakeEnv(nil), homeDir: noHome},
			wantErr: ErrNoSocketDir,
		},
		{
			name: "windows named pipe",
			dir:  &Directory{goos: platform.Windows, getenv: fakeEnv(map[string]string{"USERNAME": `CORP\pj`}), homeDir: noHome},
			want: `\\.\pipe\pathloc-CORP_pj`,
		},
		{
			name: "windows without user",
			dir:  &Directory{goos: platform.Windows, getenv: fakeEnv(nil), homeDir: noHome},
			want: `\\.\pipe\pathloc-default`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.dir.LocalSocket()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LocalSocket() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LocalSocket() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LocalSocket() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_Override(t *testing.T) {
	t.Parallel()

	d := New("/tmp/x.sock")
	got, err := d.LocalSocket()
	if err != nil || got != "/tmp/x.sock" {
		t.Errorf("New(override).LocalSocket() = (%q, %v), want (%q, nil)", got, err, "/tmp/x.sock")
	}
}
