// SPDX-License-Identifier: MPL-2.0

package location

import (
	"strconv"

	"github.com/pathloc/pathloc/pkg/types"
)

type (
	// LineCol is a position inside a file. Values are taken as given:
	// zero is not rejected and bounds are never checked against content.
	LineCol struct {
		Line   uint `json:"line"`
		Column uint `json:"column"`
	}

	// Location is a path plus an optional position. It is immutable once
	// constructed; use FromPath or FromPathAndPosition.
	Location struct {
		path    types.FilesystemPath
		lineCol *LineCol
	}
)

// FromPath returns a Location without a position.
func FromPath(path types.FilesystemPath) Location {
	return Location{path: path}
}

// FromPathAndPosition returns a Location at line and column.
func FromPathAndPosition(path types.FilesystemPath, line, column uint) Location {
	return Location{path: path, lineCol: &LineCol{Line: line, Column: column}}
}

// Path returns the location's filesystem path.
func (l Location) Path() types.FilesystemPath { return l.path }

// LineCol returns the position and whether one is present.
func (l Location) LineCol() (LineCol, bool) {
	if l.lineCol == nil {
		return LineCol{}, false
	}
	return *l.lineCol, true
}

// HasPosition reports whether a line/column pair is attached.
func (l Location) HasPosition() bool { return l.lineCol != nil }

// Equal reports whether both locations carry the same path and position.
func (l Location) Equal(other Location) bool {
	if l.path != other.path {
		return false
	}
	a, aok := l.LineCol()
	b, bok := other.LineCol()
	return aok == bok && a == b
}

// String renders the location as path, or path:line:column.
func (l Location) String() string {
	s := string(l.path)
	if lc, ok := l.LineCol(); ok {
		s += ":" + strconv.FormatUint(uint64(lc.Line), 10) + ":" + strconv.FormatUint(uint64(lc.Column), 10)
	}
	return s
}
