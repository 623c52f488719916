// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InstanceUnreachableId Id = iota + 1
	SocketDirUnavailableId
	ConfigLoadFailedId
	ListenFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for this issue, may be empty
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue with the given glamour style ("auto", "dark",
// "light", "notty", or a path to a style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	instanceUnreachableIssue = &Issue{
		id: InstanceUnreachableId,
		mdMsg: `
# No running instance found!

The paths could not be handed to an already-running editor. Nothing was opened.

## Things you can try:
- Start the editor, then run the command again
- Check which address is being used:
~~~
$ pathloc config show
~~~
- If the editor listens somewhere else, point pathloc at it:
~~~
$ pathloc --socket /path/to/local.sock main.go:12
$ export PATHLOC_SOCKET_PATH=/path/to/local.sock
~~~
- Only print the resolved locations:
~~~
$ pathloc --print main.go:12:5
~~~`,
	}

	socketDirUnavailableIssue = &Issue{
		id: SocketDirUnavailableId,
		mdMsg: `
# Cannot determine the local socket location!

pathloc derives the address of the running instance from your home directory
or the XDG base directories, and neither is available.

## Things you can try:
- Set HOME (or XDG_RUNTIME_DIR on Linux)
- Set the address explicitly with ` + "`--socket`" + ` or ` + "`socket_path`" + ` in config.cue`,
		extLinks: []HttpLink{"https://specifications.freedesktop.org/basedir-spec/latest/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The config.cue file could not be read or does not match the schema.

## Things you can try:
- Show where pathloc looks for its config:
~~~
$ pathloc config path
~~~
- Regenerate a default file (existing files are kept):
~~~
$ pathloc config init
~~~
- Check PATHLOC_* environment variables for typos

## Example config.cue:
~~~cue
socket_path: "/run/user/1000/pathloc/local.sock"
ui: color_scheme: "dark"
log: level: "info"
open: absolute_paths: true
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	listenFailedIssue = &Issue{
		id: ListenFailedId,
		mdMsg: `
# Failed to listen on the local socket!

Another process may already own the address, or its directory is not writable.

## Things you can try:
- Stop the other listener (a running editor or another ` + "`pathloc listen`" + `)
- Listen on a different address:
~~~
$ pathloc listen --socket /tmp/pathloc-test.sock
~~~`,
	}

	issues = map[Id]*Issue{
		instanceUnreachableIssue.Id():  instanceUnreachableIssue,
		socketDirUnavailableIssue.Id(): socketDirUnavailableIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		listenFailedIssue.Id():         listenFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the issue registered under id, or nil if there is none.
func Get(id Id) *Issue {
	return issues[id]
}
