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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{Environ: os.Environ})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct {
	// Environ feeds the env object of the evaluation context
	Environ func() []string
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": p.envObject(),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		HomeEnv      string   `hcl:"home_env,optional"`
		BaseDir      string   `hcl:"base_dir,optional"`
		ProfilesDir  string   `hcl:"profiles_dir,optional"`
		SlotsDir     string   `hcl:"slots_dir,optional"`
		SaveFilesDir string   `hcl:"save_files_dir,optional"`
		SavePrefix   string   `hcl:"save_prefix,optional"`
		Exclude      []string `hcl:"exclude,optional"`
		DatedPrefix  string   `hcl:"dated_prefix,optional"`
		DatedLayout  string   `hcl:"dated_layout,optional"`
		Mode         string   `hcl:"mode,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Config{
		HomeEnv:      hclCfg.HomeEnv,
		BaseDir:      hclCfg.BaseDir,
		ProfilesDir:  hclCfg.ProfilesDir,
		SlotsDir:     hclCfg.SlotsDir,
		SaveFilesDir: hclCfg.SaveFilesDir,
		SavePrefix:   hclCfg.SavePrefix,
		Exclude:      hclCfg.Exclude,
		DatedPrefix:  hclCfg.DatedPrefix,
		DatedLayout:  hclCfg.DatedLayout,
		Mode:         hclCfg.Mode,
	}, nil
}

func (p *HCLParser) envObject() cty.Value {
	vars := map[string]cty.Value{}
	if p.Environ != nil {
		for _, kv := range p.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				continue
			}
			vars[k] = cty.StringVal(v)
		}
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
