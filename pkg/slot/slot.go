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

// Package slot manages the named snapshot directories kept under a profile.
package slot

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultRootName    = "Slots"
	DefaultDatedPrefix = "dated-"
	DefaultDatedLayout = "2006-01-02_150405"
)

// 🗂️ Slot is one snapshot directory
type Slot struct {
	Name    string
	Path    string
	ModTime time.Time
}

// 🔧 Manager resolves slots below a profile
type Manager struct {
	// RootName is the directory under each profile holding the slots
	RootName string
}

// 🏭 NewManager creates a slot manager; an empty rootName means "Slots"
func NewManager(rootName string) *Manager {
	if rootName == "" {
		rootName = DefaultRootName
	}
	return &Manager{RootName: rootName}
}

// 📁 EnsureRoot returns the slot root of profile, creating it if absent
func (m *Manager) EnsureRoot(ctx context.Context, profile string) (string, error) {
	root := filepath.Join(profile, m.RootName)
	if err := ensureDir(ctx, root); err != nil {
		return "", errors.Errorf("ensuring slot root: %w", err)
	}
	return root, nil
}

// 📁 Ensure returns the named slot of profile, creating it and the root if absent
func (m *Manager) Ensure(ctx context.Context, profile, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	root, err := m.EnsureRoot(ctx, profile)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, name)
	if err := ensureDir(ctx, path); err != nil {
		return "", errors.Errorf("ensuring slot %s: %w", name, err)
	}
	return path, nil
}

// 📋 List returns every slot of profile ordered newest first. Slots sharing a
// modification time keep the order the directory listing produced.
func (m *Manager) List(ctx context.Context, profile string) ([]Slot, error) {
	root, err := m.EnsureRoot(ctx, profile)
	if err != nil {
		return nil, err
	}

	entries, err := scan.Find(ctx, root, scan.Dir, scan.Any())
	if err != nil {
		return nil, errors.Errorf("listing slots: %w", err)
	}

	slots := make([]Slot, 0, len(entries))
	for _, e := range entries {
		info, err := os.Stat(e.Path)
		if err != nil {
			return nil, errors.Errorf("reading slot %s: %w", e.Name, err)
		}
		slots = append(slots, Slot{Name: e.Name, Path: e.Path, ModTime: info.ModTime()})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].ModTime.After(slots[j].ModTime)
	})

	return slots, nil
}

// 🔍 NthNewest returns the slot at recency rank n (0 is the newest). The bool
// is false when n is out of range.
func (m *Manager) NthNewest(ctx context.Context, profile string, n int) (Slot, bool, error) {
	if n < 0 {
		return Slot{}, false, errors.Errorf("slot rank must not be negative, got %d", n)
	}

	slots, err := m.List(ctx, profile)
	if err != nil {
		return Slot{}, false, err
	}

	if n >= len(slots) {
		zerolog.Ctx(ctx).Debug().Int("rank", n).Int("slots", len(slots)).Msg("slot rank out of range")
		return Slot{}, false, nil
	}

	return slots[n], true, nil
}

// 🗑️ Remove removes an emptied slot directory
func (m *Manager) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("removing slot directory: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removed slot directory")
	return nil
}

// 🕒 DatedName builds the name of a dated slot, in local time
func DatedName(now time.Time, prefix, layout string) string {
	if layout == "" {
		layout = DefaultDatedLayout
	}
	return prefix + now.Local().Format(layout)
}

// ValidateName rejects names that would escape the slot root.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Errorf("invalid slot name %q", name)
	case filepath.Base(name) != name:
		return errors.Errorf("slot name %q must not contain path separators", name)
	}
	return nil
}

func ensureDir(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.Errorf("%s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Errorf("checking %s: %w", path, err)
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return errors.Errorf("creating %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("created directory")
	return nil
}
