// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeTestFile(t, fs, "main.go")
	writeTestFile(t, fs, "main.go:3")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain",
			args: []string{"resolve", "main.go:12", "main.go:12:4", "main.go:3"},
			want: "main.go:12:1\nmain.go:12:4\nmain.go:3\n",
		},
		{
			name: "json",
			args: []string{"resolve", "--json", "main.go:12:4", "+7", "missing", "main.go:3"},
			want: `{"path":"main.go","line":12,"column":4}` + "\n" +
				`{"path":"missing","line":7,"column":1}` + "\n" +
				`{"path":"main.go:3"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := newTestApp(t, Dependencies{Fs: fs, Dialer: newPipeDialer()})
			if err := ta.run(context.Background(), tt.args...); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := ta.stdout.String(); got != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestResolve_RequiresArgs(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{Dialer: newPipeDialer()})
	err := ta.run(context.Background(), "resolve")
	if err == nil || !strings.Contains(err.Error(), "requires at least 1 arg") {
		t.Fatalf("expected an argument error, got %v", err)
	}
}
