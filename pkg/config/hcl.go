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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// 🔧 HCLParser implements the Parser interface for HCL files.
// Categories are labelled blocks:
//
//	category "Images" {
//	  extensions = [".jpg", ".png"]
//	}
//
// The variable home holds the user's home directory.
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "cleanmyfiles.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}
	if home, err := os.UserHomeDir(); err == nil {
		evalCtx.Variables["home"] = cty.StringVal(home)
	} else {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("home directory unavailable to HCL config")
	}

	// Define HCL schema
	type hclConfig struct {
		Directory  string   `hcl:"directory,optional"`
		BatchSize  int      `hcl:"batch_size,optional"`
		DryRun     bool     `hcl:"dry_run,optional"`
		Exclude    []string `hcl:"exclude,optional"`
		Fallback   string   `hcl:"fallback,optional"`
		Categories []struct {
			Name       string   `hcl:"name,label"`
			Extensions []string `hcl:"extensions,optional"`
		} `hcl:"category,block"`
		Log *struct {
			File  string `hcl:"file,optional"`
			Level string `hcl:"level,optional"`
			Quiet bool   `hcl:"quiet,optional"`
		} `hcl:"log,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Directory: hclCfg.Directory,
		BatchSize: hclCfg.BatchSize,
		DryRun:    hclCfg.DryRun,
		Exclude:   hclCfg.Exclude,
		Fallback:  hclCfg.Fallback,
	}
	for _, c := range hclCfg.Categories {
		cfg.Categories = append(cfg.Categories, CategoryConfig{
			Name:       c.Name,
			Extensions: c.Extensions,
		})
	}
	if hclCfg.Log != nil {
		cfg.Log = LogConfig{
			File:  hclCfg.Log.File,
			Level: hclCfg.Log.Level,
			Quiet: hclCfg.Log.Quiet,
		}
	}

	return cfg, nil
}
