// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, plus the few path predicates the
// resolver and notifier share.
package fspath

import (
	"fmt"
	"path/filepath"

	"github.com/pathloc/pathloc/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Base wraps filepath.Base for FilesystemPath.
func Base(p types.FilesystemPath) string {
	return filepath.Base(string(p))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// IsAbs wraps filepath.IsAbs for FilesystemPath.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// SplitFinal cleans p and splits it into its directory prefix and final
// component. ok is false when the final component is not an ordinary name:
// a filesystem root, "." or "..".
func SplitFinal(p types.FilesystemPath) (dir types.FilesystemPath, name string, ok bool) {
	cleaned := Clean(p)
	name = Base(cleaned)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", "", false
	}
	if filepath.VolumeName(string(cleaned)) == string(cleaned) {
		return "", "", false
	}
	return Dir(cleaned), name, true
}

// WithDir places name under dir. A "." dir is dropped so relative inputs
// stay relative and free of a leading "./".
func WithDir(dir types.FilesystemPath, name string) types.FilesystemPath {
	if dir == "" || dir == "." {
		return types.FilesystemPath(name)
	}
	return JoinStr(dir, name)
}
