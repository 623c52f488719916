// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain registers the pathloc binary for the testscript suite. The
// process re-executes itself as "pathloc" inside scripts.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"pathloc": Execute,
	})
}

// TestCLI runs the txtar scripts in testdata/script against the real
// command tree, filesystem and socket dialer.
func TestCLI(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, "config"))
			env.Setenv("XDG_RUNTIME_DIR", filepath.Join(env.WorkDir, "run"))
			env.Setenv("NO_COLOR", "1")
			return nil
		},
		ContinueOnError: true,
	})
}
