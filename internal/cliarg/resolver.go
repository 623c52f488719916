// SPDX-License-Identifier: MPL-2.0

package cliarg

import (
	"io"
	"strings"

	"github.com/pathloc/pathloc/internal/location"
	"github.com/pathloc/pathloc/pkg/fspath"
	"github.com/pathloc/pathloc/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// suffixSep separates the path from its line and column suffixes.
const suffixSep = ":"

type (
	// Candidate is one interpretation of a raw argument. Guarded candidates
	// only win when their path is an existing file; an unguarded candidate
	// always wins and terminates the list.
	Candidate struct {
		Location location.Location
		Guarded  bool
	}

	// Resolver turns raw arguments into locations using a filesystem as the
	// existence oracle.
	Resolver struct {
		fs     afero.Fs
		logger *log.Logger
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithLogger sets the logger used to report which candidate won.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a Resolver backed by fs.
func NewResolver(fs afero.Fs, opts ...Option) *Resolver {
	r := &Resolver{
		fs:     fs,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultResolver creates a Resolver backed by the operating system.
func DefaultResolver(opts ...Option) *Resolver {
	return NewResolver(afero.NewOsFs(), opts...)
}

// Resolve returns the location named by raw. It never fails: stat errors
// count as "does not exist" and every input ends in some location.
func (r *Resolver) Resolve(raw string) location.Location {
	candidates := Candidates(raw)
	for i, c := range candidates {
		if c.Guarded && !r.isFile(c.Location.Path()) {
			continue
		}
		r.logger.Debug("resolved argument", "arg", raw, "location", c.Location, "candidate", i)
		return c.Location
	}
	// Candidates always ends with an unguarded entry.
	return location.FromPath(types.FilesystemPath(raw))
}

func (r *Resolver) isFile(p types.FilesystemPath) bool {
	if p == "" {
		return false
	}
	info, err := r.fs.Stat(string(p))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Candidates lists the interpretations of raw in priority order. The list is
// never empty and its last element is unguarded.
//
// Only the two rightmost colon-separated tokens of the final path component
// are ever read as line and column.
func Candidates(raw string) []Candidate {
	rawPath := types.FilesystemPath(raw)
	candidates := []Candidate{guarded(location.FromPath(rawPath))}

	dir, name, ok := fspath.SplitFinal(rawPath)
	if !ok {
		return append(candidates, fallback(location.FromPath(rawPath)))
	}
	literal := location.FromPath(fspath.WithDir(dir, name))

	tokens := strings.Split(name, suffixSep)
	n := len(tokens)
	last, lastIsNum := parseNumber(tokens[n-1])
	if !lastIsNum {
		return append(candidates, fallback(literal))
	}

	if n >= 2 {
		if line, ok := parseNumber(tokens[n-2]); ok {
			if stem := JoinPrefix(tokens[:n-2], suffixSep); stem != "" {
				candidates = append(candidates,
					guarded(location.FromPathAndPosition(fspath.WithDir(dir, stem), line, last)))
			}
		}
		if stem := JoinPrefix(tokens[:n-1], suffixSep); stem != "" {
			candidates = append(candidates,
				guarded(location.FromPathAndPosition(fspath.WithDir(dir, stem), last, 1)))
		}
	}

	// The literal name needs no existence check: it is also the answer when
	// nothing exists.
	return append(candidates, fallback(literal))
}

func guarded(loc location.Location) Candidate {
	return Candidate{Location: loc, Guarded: true}
}

func fallback(loc location.Location) Candidate {
	return Candidate{Location: loc}
}
