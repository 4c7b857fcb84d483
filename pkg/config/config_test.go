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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/saveslot/pkg/transfer"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml",
			filename: "saveslot.yaml",
			config: `
base_dir: Games/GTA V
save_prefix: PGTA
exclude:
  - "*.bak"
mode: move
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Games/GTA V", cfg.BaseDir, "base dir should match")
				assert.Equal(t, "PGTA", cfg.SavePrefix, "prefix should match")
				assert.Equal(t, []string{"*.bak"}, cfg.Exclude, "exclude should match")
				assert.Equal(t, transfer.ModeMove, cfg.TransferMode(), "mode should match")
				assert.Equal(t, "Slots", cfg.SlotsDir, "slots dir should default")
			},
		},
		{
			name:     "empty_yaml_uses_defaults",
			filename: "saveslot.yml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultBaseDir, cfg.BaseDir)
				assert.Equal(t, DefaultSavePrefix, cfg.SavePrefix)
				assert.Equal(t, transfer.ModeCopy, cfg.TransferMode())
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "saveslot.yaml",
			config:      "destination: /tmp\n",
			errContains: "parsing YAML",
		},
		{
			name:     "json",
			filename: "saveslot.json",
			config:   `{"profiles_dir": "Users", "dated_prefix": "auto-"}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Users", cfg.ProfilesDir)
				assert.Equal(t, "auto-", cfg.DatedPrefix)
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "saveslot.json",
			config:      `{"nope": 1}`,
			errContains: "parsing JSON",
		},
		{
			name:     "toml",
			filename: "saveslot.toml",
			config: `
home_env = "GAME_HOME"
slots_dir = "Snapshots"
exclude = ["*.tmp"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "GAME_HOME", cfg.HomeEnv)
				assert.Equal(t, "Snapshots", cfg.SlotsDir)
				assert.Equal(t, []string{"*.tmp"}, cfg.Exclude)
			},
		},
		{
			name:     "hcl",
			filename: "saveslot.hcl",
			config: `
save_files_dir = "Mission Saves"
dated_layout   = "20060102-1504"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Mission Saves", cfg.SaveFilesDir)
				assert.Equal(t, "20060102-1504", cfg.DatedLayout)
			},
		},
		{
			name:        "invalid_mode",
			filename:    "saveslot.yaml",
			config:      "mode: teleport\n",
			errContains: "unknown transfer mode",
		},
		{
			name:        "invalid_exclude",
			filename:    "saveslot.yaml",
			config:      "exclude: ['[']\n",
			errContains: "invalid glob pattern",
		},
		{
			name:        "nested_slots_dir",
			filename:    "saveslot.yaml",
			config:      "slots_dir: a/b\n",
			errContains: "single directory name",
		},
		{
			name:        "slots_dir_dotdot",
			filename:    "saveslot.yaml",
			config:      "slots_dir: \"..\"\n",
			errContains: "slots_dir must be a single directory name",
		},
		{
			name:        "slots_dir_dot",
			filename:    "saveslot.yaml",
			config:      "slots_dir: \".\"\n",
			errContains: "slots_dir must be a single directory name",
		},
		{
			name:        "save_files_dir_dotdot",
			filename:    "saveslot.json",
			config:      `{"save_files_dir": ".."}`,
			errContains: "save_files_dir must be a single directory name",
		},
		{
			name:        "profiles_dir_dot",
			filename:    "saveslot.toml",
			config:      "profiles_dir = \".\"\n",
			errContains: "profiles_dir must be a single directory name",
		},
		{
			name:        "dated_layout_with_separator",
			filename:    "saveslot.yaml",
			config:      "dated_layout: 2006/01/02\n",
			errContains: "dated_prefix/dated_layout",
		},
		{
			name:        "unsupported_extension",
			filename:    "saveslot.ini",
			config:      "x=1",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file should succeed")

			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err, "expected error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "loading config should succeed")
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoadNoPath(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	cfg, err := Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Location())
}

func TestLoadMissingFile(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	_, err := Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestHCLEnvironment(t *testing.T) {
	p := &HCLParser{Environ: func() []string { return []string{"GAME_DOCS=/mnt/docs", "BROKEN"} }}

	cfg, err := p.Parse(context.Background(), []byte(`base_dir = "${env.GAME_DOCS}/GTA V"`))
	require.NoError(t, err)
	assert.Equal(t, "/mnt/docs/GTA V", cfg.BaseDir)

	empty := &HCLParser{}
	_, err = empty.Parse(context.Background(), []byte(`base_dir = env.GAME_DOCS`))
	require.Error(t, err, "unknown env variables fail to decode")
}

func TestSaveFileMatcher(t *testing.T) {
	cfg := &Config{Exclude: []string{"*.bak", "*.tmp"}}
	require.NoError(t, cfg.Validate())

	m := cfg.SaveFileMatcher()
	assert.True(t, m("SGTA50000"))
	assert.False(t, m("SGTA50000.bak"))
	assert.False(t, m("SGTA50000.tmp"))
	assert.False(t, m("PGTA50000"))
}
