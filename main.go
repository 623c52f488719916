// SPDX-License-Identifier: MPL-2.0

// pathloc opens PATH[:LINE[:COLUMN]] arguments in a running editor instance.
package main

import cmd "github.com/pathloc/pathloc/cmd/pathloc"

func main() {
	cmd.Execute()
}
