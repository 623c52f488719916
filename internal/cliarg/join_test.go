// SPDX-License-Identifier: MPL-2.0

package cliarg

import (
	"strings"
	"testing"
)

func TestJoinWithSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		sep      string
		want     string
	}{
		{"empty", nil, ":", ""},
		{"single", []string{"Cargo.toml"}, ":", "Cargo.toml:"},
		{"ordered", []string{"a", "b", "c"}, ":", "a:b:c:"},
		{"empty segments kept", []string{"", "x", ""}, ":", ":x::"},
		{"multi-char separator", []string{"a", "b"}, "--", "a--b--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := JoinWithSeparator(tt.segments, tt.sep); got != tt.want {
				t.Errorf("JoinWithSeparator(%q, %q) = %q, want %q", tt.segments, tt.sep, got, tt.want)
			}
		})
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"Cargo.toml"}, "Cargo.toml"},
		{[]string{"Cargo.toml", "12"}, "Cargo.toml:12"},
		{[]string{"foo", ""}, "foo:"},
	}

	for _, tt := range tests {
		if got := JoinPrefix(tt.segments, ":"); got != tt.want {
			t.Errorf("JoinPrefix(%q) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestJoinWithSeparator_LongInput(t *testing.T) {
	t.Parallel()

	segments := make([]string, 200_000)
	for i := range segments {
		segments[i] = "x"
	}
	got := JoinPrefix(segments, ":")
	if want := strings.Repeat("x:", len(segments)-1) + "x"; got != want {
		t.Errorf("JoinPrefix() of %d segments produced %d bytes, want %d", len(segments), len(got), len(want))
	}
}
