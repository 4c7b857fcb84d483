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

// Package profile locates the game's profile directories.
package profile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMissingHome is returned when the home environment variable is unset or empty
	ErrMissingHome = errors.Base("home environment variable is not set")
	// ErrNoProfiles is returned when the profiles directory does not exist
	ErrNoProfiles = errors.Base("profiles directory does not exist")
)

// DefaultHomeEnv is the environment variable rooting the base path on this platform.
func DefaultHomeEnv() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// 📁 Profile is one game profile directory
type Profile struct {
	Name string
	Path string
}

// 🗺️ Layout describes where the profiles live
type Layout struct {
	// Base is the game's document directory
	Base string
	// ProfilesDir is the directory under Base holding one directory per profile
	ProfilesDir string
}

// 🏭 ResolveLayout roots baseDir under the directory named by the homeEnv
// variable. lookup is usually os.LookupEnv.
func ResolveLayout(lookup func(string) (string, bool), homeEnv, baseDir, profilesDir string) (*Layout, error) {
	home, ok := lookup(homeEnv)
	if !ok || home == "" {
		return nil, errors.Errorf("%w: %s", ErrMissingHome, homeEnv)
	}

	return &Layout{
		Base:        filepath.Join(home, filepath.FromSlash(baseDir)),
		ProfilesDir: profilesDir,
	}, nil
}

// ProfilesPath returns the directory holding the profiles.
func (l *Layout) ProfilesPath() string {
	return filepath.Join(l.Base, l.ProfilesDir)
}

// 🔍 Discover lists every profile directory, sorted by name. ErrNoProfiles is
// returned when the profiles directory is missing.
func (l *Layout) Discover(ctx context.Context) ([]Profile, error) {
	root := l.ProfilesPath()

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: %s", ErrNoProfiles, root)
		}
		return nil, errors.Errorf("checking profiles directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s", ErrNoProfiles, root)
	}

	entries, err := scan.Find(ctx, root, scan.Dir, scan.Any())
	if err != nil {
		return nil, errors.Errorf("listing profiles: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	profiles := make([]Profile, 0, len(entries))
	for _, e := range entries {
		profiles = append(profiles, Profile{Name: e.Name, Path: e.Path})
	}

	zerolog.Ctx(ctx).Debug().Str("root", root).Int("profiles", len(profiles)).Msg("discovered profiles")

	return profiles, nil
}

// Filter keeps only the profile called name. An empty name keeps all.
func Filter(profiles []Profile, name string) ([]Profile, error) {
	if name == "" {
		return profiles, nil
	}
	for _, p := range profiles {
		if p.Name == name {
			return []Profile{p}, nil
		}
	}
	return nil, errors.Errorf("profile %q not found", name)
}
