// SPDX-License-Identifier: MPL-2.0

package location

import (
	"testing"

	"github.com/pathloc/pathloc/pkg/types"
)

func TestFromPath_PreservesPath(t *testing.T) {
	t.Parallel()

	paths := []types.FilesystemPath{
		"Cargo.toml",
		"Cargo.toml:12:623:352",
		"/abs/dir/file.go",
		"",
		"C:\\Users\\pj\\Cargo.toml",
	}
	for _, p := range paths {
		loc := FromPath(p)
		if loc.Path() != p {
			t.Errorf("FromPath(%q).Path() = %q", p, loc.Path())
		}
		if loc.HasPosition() {
			t.Errorf("FromPath(%q) should not carry a position", p)
		}
		if _, ok := loc.LineCol(); ok {
			t.Errorf("FromPath(%q).LineCol() ok = true, want false", p)
		}
	}
}

func TestFromPathAndPosition(t *testing.T) {
	t.Parallel()

	loc := FromPathAndPosition("Cargo.toml", 55, 3)
	lc, ok := loc.LineCol()
	if !ok {
		t.Fatal("LineCol() ok = false, want true")
	}
	if lc.Line != 55 || lc.Column != 3 {
		t.Errorf("LineCol() = %+v, want {55 3}", lc)
	}
	if loc.Path() != "Cargo.toml" {
		t.Errorf("Path() = %q, want %q", loc.Path(), "Cargo.toml")
	}
}

func TestLocation_ZeroPositionAccepted(t *testing.T) {
	t.Parallel()

	loc := FromPathAndPosition("main.go", 0, 0)
	if !loc.HasPosition() {
		t.Fatal("zero line/column should still be a position")
	}
}

func TestLocation_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Location
		want bool
	}{
		{"same path no position", FromPath("a"), FromPath("a"), true},
		{"same position", FromPathAndPosition("a", 1, 2), FromPathAndPosition("a", 1, 2), true},
		{"different path", FromPath("a"), FromPath("b"), false},
		{"position vs none", FromPathAndPosition("a", 1, 1), FromPath("a"), false},
		{"different column", FromPathAndPosition("a", 1, 1), FromPathAndPosition("a", 1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLocation_String(t *testing.T) {
	t.Parallel()

	if got := FromPath("Cargo.toml").String(); got != "Cargo.toml" {
		t.Errorf("String() = %q, want %q", got, "Cargo.toml")
	}
	if got := FromPathAndPosition("Cargo.toml", 55, 1).String(); got != "Cargo.toml:55:1" {
		t.Errorf("String() = %q, want %q", got, "Cargo.toml:55:1")
	}
}
