// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"path/filepath"
	"testing"

	"github.com/pathloc/pathloc/pkg/fspath"
	"github.com/pathloc/pathloc/pkg/types"
)

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("src"), "cli", "mod.rs")
	want := types.FilesystemPath(filepath.Join("src", "cli", "mod.rs"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDirAndBase(t *testing.T) {
	t.Parallel()

	p := types.FilesystemPath(filepath.Join("home", "user", "file.txt"))
	if got, want := fspath.Dir(p), types.FilesystemPath(filepath.Join("home", "user")); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got := fspath.Base(p); got != "file.txt" {
		t.Errorf("Base() = %q, want %q", got, "file.txt")
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("."))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	if !fspath.IsAbs(got) {
		t.Errorf("Abs() = %q, want absolute path", got)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath(filepath.FromSlash("./a/../Cargo.toml")))
	if got != "Cargo.toml" {
		t.Errorf("Clean() = %q, want %q", got, "Cargo.toml")
	}
}

func TestSplitFinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		wantDir  string
		wantName string
		wantOK   bool
	}{
		{"bare name", "Cargo.toml:55", ".", "Cargo.toml:55", true},
		{"nested", filepath.Join("src", "main.rs:3:4"), "src", "main.rs:3:4", true},
		{"parent ref cleaned away", filepath.FromSlash("./a/../Cargo.toml"), ".", "Cargo.toml", true},
		{"dot", ".", "", "", false},
		{"dot dot", "..", "", "", false},
		{"root", string(filepath.Separator), "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, name, ok := fspath.SplitFinal(types.FilesystemPath(tt.in))
			if ok != tt.wantOK {
				t.Fatalf("SplitFinal(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if string(dir) != tt.wantDir || name != tt.wantName {
				t.Errorf("SplitFinal(%q) = (%q, %q), want (%q, %q)", tt.in, dir, name, tt.wantDir, tt.wantName)
			}
		})
	}
}

func TestWithDir(t *testing.T) {
	t.Parallel()

	if got := fspath.WithDir(".", "Cargo.toml"); got != "Cargo.toml" {
		t.Errorf("WithDir(\".\") = %q, want %q", got, "Cargo.toml")
	}
	want := types.FilesystemPath(filepath.Join("src", "lib.rs"))
	if got := fspath.WithDir("src", "lib.rs"); got != want {
		t.Errorf("WithDir(\"src\") = %q, want %q", got, want)
	}
}
