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
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/saveslot/pkg/profile"
	"github.com/walteh/saveslot/pkg/scan"
	"github.com/walteh/saveslot/pkg/slot"
	"github.com/walteh/saveslot/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultBaseDir      = "Documents/Rockstar Games/GTA V"
	DefaultProfilesDir  = "Profiles"
	DefaultSaveFilesDir = "Save Files"
	DefaultSavePrefix   = "SGTA"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	HomeEnv      string   `json:"home_env,omitempty" yaml:"home_env,omitempty" toml:"home_env,omitempty"`
	BaseDir      string   `json:"base_dir,omitempty" yaml:"base_dir,omitempty" toml:"base_dir,omitempty"`
	ProfilesDir  string   `json:"profiles_dir,omitempty" yaml:"profiles_dir,omitempty" toml:"profiles_dir,omitempty"`
	SlotsDir     string   `json:"slots_dir,omitempty" yaml:"slots_dir,omitempty" toml:"slots_dir,omitempty"`
	SaveFilesDir string   `json:"save_files_dir,omitempty" yaml:"save_files_dir,omitempty" toml:"save_files_dir,omitempty"`
	SavePrefix   string   `json:"save_prefix,omitempty" yaml:"save_prefix,omitempty" toml:"save_prefix,omitempty"`
	Exclude      []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	DatedPrefix  string   `json:"dated_prefix,omitempty" yaml:"dated_prefix,omitempty" toml:"dated_prefix,omitempty"`
	DatedLayout  string   `json:"dated_layout,omitempty" yaml:"dated_layout,omitempty" toml:"dated_layout,omitempty"`
	Mode         string   `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`

	location string
}

// 🏭 Default returns the validated default configuration
func Default() *Config {
	cfg := &Config{}
	// defaults always validate
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file. An empty path yields Default().
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file given, using defaults")
		return Default(), nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	return cfg, nil
}

// 🔍 Validate fills defaults and checks that the configuration is usable
func (cfg *Config) Validate() error {
	if cfg.HomeEnv == "" {
		cfg.HomeEnv = profile.DefaultHomeEnv()
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if cfg.ProfilesDir == "" {
		cfg.ProfilesDir = DefaultProfilesDir
	}
	if cfg.SlotsDir == "" {
		cfg.SlotsDir = slot.DefaultRootName
	}
	if cfg.SaveFilesDir == "" {
		cfg.SaveFilesDir = DefaultSaveFilesDir
	}
	if cfg.SavePrefix == "" {
		cfg.SavePrefix = DefaultSavePrefix
	}
	if cfg.DatedPrefix == "" {
		cfg.DatedPrefix = slot.DefaultDatedPrefix
	}
	if cfg.DatedLayout == "" {
		cfg.DatedLayout = slot.DefaultDatedLayout
	}

	mode, err := transfer.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	cfg.Mode = string(mode)

	for _, dir := range []struct{ key, value string }{
		{"profiles_dir", cfg.ProfilesDir},
		{"slots_dir", cfg.SlotsDir},
		{"save_files_dir", cfg.SaveFilesDir},
	} {
		if err := slot.ValidateName(dir.value); err != nil {
			return errors.Errorf("%s must be a single directory name: %w", dir.key, err)
		}
	}

	for _, pattern := range cfg.Exclude {
		if err := scan.ValidateGlob(pattern); err != nil {
			return errors.Errorf("exclude: %w", err)
		}
	}

	sample := slot.DatedName(time.Date(2006, 1, 2, 15, 4, 5, 0, time.Local), cfg.DatedPrefix, cfg.DatedLayout)
	if err := slot.ValidateName(sample); err != nil {
		return errors.Errorf("dated_prefix/dated_layout: %w", err)
	}

	return nil
}

// 🎯 SaveFileMatcher matches save files: the prefix, minus any excluded glob
func (cfg *Config) SaveFileMatcher() scan.NameMatcher {
	ms := []scan.NameMatcher{scan.HasPrefix(cfg.SavePrefix)}
	for _, pattern := range cfg.Exclude {
		ms = append(ms, scan.Not(scan.Glob(pattern)))
	}
	return scan.All(ms...)
}

// TransferMode returns the validated transfer mode.
func (cfg *Config) TransferMode() transfer.Mode {
	return transfer.Mode(cfg.Mode)
}

// Location is the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("$%s/%s/%s [%s*] (%s)", cfg.HomeEnv, cfg.BaseDir, cfg.ProfilesDir, cfg.SavePrefix, cfg.Mode)
}
