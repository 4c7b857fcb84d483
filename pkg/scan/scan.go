// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan lists the direct entries of a directory filtered by entry type
// and by name.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 EntryType selects which kind of entry a scan keeps
type EntryType int

const (
	AnyType EntryType = iota
	File
	Dir
)

// String returns a string representation of EntryType
func (t EntryType) String() string {
	switch t {
	case File:
		return "file"
	case Dir:
		return "dir"
	default:
		return "any"
	}
}

// 📄 Entry is one matching directory entry
type Entry struct {
	Name string // Base name
	Path string // Full path (dir joined with name)
}

// 🔍 NameMatcher decides whether an entry name is kept
type NameMatcher func(name string) bool

// HasPrefix matches names starting with prefix.
func HasPrefix(prefix string) NameMatcher {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

// Contains matches names containing substr.
func Contains(substr string) NameMatcher {
	return func(name string) bool { return strings.Contains(name, substr) }
}

// Any matches every name.
func Any() NameMatcher {
	return func(string) bool { return true }
}

// Glob matches names against a doublestar pattern. Malformed patterns never match.
func Glob(pattern string) NameMatcher {
	return func(name string) bool {
		ok, err := doublestar.Match(pattern, name)
		return err == nil && ok
	}
}

// Not inverts m.
func Not(m NameMatcher) NameMatcher {
	return func(name string) bool { return !m(name) }
}

// All matches when every matcher matches. With no matchers it matches everything.
func All(ms ...NameMatcher) NameMatcher {
	return func(name string) bool {
		for _, m := range ms {
			if !m(name) {
				return false
			}
		}
		return true
	}
}

// ValidateGlob reports whether pattern is usable with Glob.
func ValidateGlob(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return errors.Errorf("invalid glob pattern %q", pattern)
	}
	return nil
}

// 🎯 Find returns the entries directly under dir that match both typ and match.
// Symlinks are followed when deciding the entry type. The order of the result
// is whatever the directory listing yields; callers sort when order matters.
func Find(ctx context.Context, dir string, typ EntryType, match NameMatcher) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	logger := zerolog.Ctx(ctx)

	var out []Entry
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		ok, err := isType(e, path, typ)
		if err != nil {
			return nil, errors.Errorf("inspecting %s: %w", path, err)
		}
		if !ok || !match(e.Name()) {
			continue
		}

		out = append(out, Entry{Name: e.Name(), Path: path})
	}

	logger.Debug().
		Str("dir", dir).
		Str("type", typ.String()).
		Int("matches", len(out)).
		Msg("scanned directory")

	return out, nil
}

func isType(e os.DirEntry, path string, typ EntryType) (bool, error) {
	if typ == AnyType {
		return true, nil
	}

	mode := e.Type()
	if mode&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			// dangling links are neither files nor dirs
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, err
		}
		mode = info.Mode()
	}

	switch typ {
	case File:
		return mode.IsRegular(), nil
	case Dir:
		return mode.IsDir(), nil
	}
	return false, nil
}
