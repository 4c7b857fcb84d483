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

package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestResolveLayout(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantBase string
		wantErr  error
	}{
		{
			name:     "home_set",
			env:      map[string]string{"USERPROFILE": "/home/niko"},
			wantBase: filepath.Join("/home/niko", "Documents", "Rockstar Games", "GTA V"),
		},
		{
			name:    "home_missing",
			env:     map[string]string{},
			wantErr: ErrMissingHome,
		},
		{
			name:    "home_empty",
			env:     map[string]string{"USERPROFILE": ""},
			wantErr: ErrMissingHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ResolveLayout(envLookup(tt.env), "USERPROFILE", "Documents/Rockstar Games/GTA V", "Profiles")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v", tt.wantErr)
				assert.Contains(t, err.Error(), "USERPROFILE")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, l.Base)
			assert.Equal(t, filepath.Join(tt.wantBase, "Profiles"), l.ProfilesPath())
		})
	}
}

func TestDiscover(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	base := t.TempDir()
	root := filepath.Join(base, "Profiles")
	for _, d := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "cfg.dat"), nil, 0644))

	l := &Layout{Base: base, ProfilesDir: "Profiles"}
	profiles, err := l.Discover(ctx)
	require.NoError(t, err)

	assert.Equal(t, []Profile{
		{Name: "alpha", Path: filepath.Join(root, "alpha")},
		{Name: "mid", Path: filepath.Join(root, "mid")},
		{Name: "zeta", Path: filepath.Join(root, "zeta")},
	}, profiles)
}

func TestDiscoverMissingProfiles(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	l := &Layout{Base: t.TempDir(), ProfilesDir: "Profiles"}
	_, err := l.Discover(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProfiles))
}

func TestFilter(t *testing.T) {
	all := []Profile{{Name: "a"}, {Name: "b"}}

	got, err := Filter(all, "")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = Filter(all, "b")
	require.NoError(t, err)
	assert.Equal(t, []Profile{{Name: "b"}}, got)

	_, err = Filter(all, "c")
	require.Error(t, err)
}

func TestDefaultHomeEnv(t *testing.T) {
	assert.Contains(t, []string{"HOME", "USERPROFILE"}, DefaultHomeEnv())
}
