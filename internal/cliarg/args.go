// SPDX-License-Identifier: MPL-2.0

package cliarg

import (
	"github.com/pathloc/pathloc/internal/location"
)

// ResolveArgs resolves every path argument in order. A "+N" token is not a
// path: it applies line N, column 1 to the next path argument unless that
// argument already carries its own position. A trailing "+N" is ignored.
func (r *Resolver) ResolveArgs(args []string) []location.Location {
	locs := make([]location.Location, 0, len(args))
	var pending *uint
	for _, arg := range args {
		if line, ok := ParsePlusLine(arg); ok {
			pending = &line
			continue
		}

		loc := r.Resolve(arg)
		if pending != nil && !loc.HasPosition() {
			loc = location.FromPathAndPosition(loc.Path(), *pending, 1)
		}
		pending = nil
		locs = append(locs, loc)
	}
	if pending != nil {
		r.logger.Debug("ignoring trailing line argument", "line", *pending)
	}
	return locs
}
