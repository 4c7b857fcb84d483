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

package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDir(t *testing.T, files []string, dirs []string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("content of "+f), 0644), "writing %s", f)
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0755), "creating %s", d)
	}
	return dir
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

func TestFind(t *testing.T) {
	files := []string{"SGTA50000", "SGTA50001", "SGTA50001.bak", "notes.txt", "xSGTA"}
	dirs := []string{"SGTA_dir", "Slots", "Save Files"}

	tests := []struct {
		name  string
		typ   EntryType
		match NameMatcher
		want  []string
	}{
		{
			name:  "prefix_files_only",
			typ:   File,
			match: HasPrefix("SGTA"),
			want:  []string{"SGTA50000", "SGTA50001", "SGTA50001.bak"},
		},
		{
			name:  "prefix_with_exclusion",
			typ:   File,
			match: All(HasPrefix("SGTA"), Not(Glob("*.bak"))),
			want:  []string{"SGTA50000", "SGTA50001"},
		},
		{
			name:  "contains_dirs_only",
			typ:   Dir,
			match: Contains("S"),
			want:  []string{"SGTA_dir", "Save Files", "Slots"},
		},
		{
			name:  "any_dir",
			typ:   Dir,
			match: Any(),
			want:  []string{"SGTA_dir", "Save Files", "Slots"},
		},
		{
			name:  "any_type",
			typ:   AnyType,
			match: HasPrefix("SGTA"),
			want:  []string{"SGTA50000", "SGTA50001", "SGTA50001.bak", "SGTA_dir"},
		},
		{
			name:  "no_matches",
			typ:   File,
			match: HasPrefix("PGTA"),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			dir := setupTestDir(t, files, dirs)

			got, err := Find(ctx, dir, tt.typ, tt.match)
			require.NoError(t, err, "scanning should succeed")

			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("unexpected entries (-want +got):\n%s", diff)
			}
			for _, e := range got {
				assert.Equal(t, filepath.Join(dir, e.Name), e.Path, "path should join dir and name")
			}
		})
	}
}

func TestFindPrefixIgnoresContent(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "SGTA001"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SGTA002"), []byte{0x00, 0xff, 0x10}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("SGTA"), 0644))

	got, err := Find(ctx, dir, File, HasPrefix("SGTA"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SGTA001", "SGTA002"}, names(got))
}

func TestFindMissingDir(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	_, err := Find(ctx, filepath.Join(t.TempDir(), "missing"), File, Any())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading directory")
}

func TestMatchers(t *testing.T) {
	assert.True(t, HasPrefix("SGTA")("SGTA1"))
	assert.False(t, HasPrefix("SGTA")("sgta1"))
	assert.True(t, Contains("beat")("2024 beat heist"))
	assert.True(t, Glob("*.bak")("SGTA1.bak"))
	assert.False(t, Glob("[")("["), "malformed patterns never match")
	assert.True(t, All()("anything"))
	assert.False(t, Not(Any())("anything"))

	require.NoError(t, ValidateGlob("**/*.bak"))
	require.Error(t, ValidateGlob("["))
}
