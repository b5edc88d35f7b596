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
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_yaml",
			file: "config.yaml",
			config: `
directory: ~/Downloads
batch_size: 25
dry_run: true
exclude:
  - "**/*.part"
fallback: Misc
categories:
  - name: Pictures
    extensions: [JPG, .png]
  - name: Books
    extensions: [".epub"]
log:
  file: /tmp/organizer.log
  level: debug
  quiet: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "~/Downloads", cfg.Directory, "directory is expanded by the caller")
				assert.Equal(t, 25, cfg.BatchSize)
				assert.True(t, cfg.DryRun)
				assert.Equal(t, []string{"**/*.part"}, cfg.Exclude)
				assert.Equal(t, "Misc", cfg.Fallback)
				require.Len(t, cfg.Categories, 2)
				assert.Equal(t, []string{".jpg", ".png"}, cfg.Categories[0].Extensions, "extensions should be normalised")
				assert.Equal(t, LogConfig{File: "/tmp/organizer.log", Level: "debug", Quiet: true}, cfg.Log)

				table, err := cfg.Table()
				require.NoError(t, err)
				assert.Equal(t, []string{"Pictures", "Books", "Misc"}, table.Names())
				assert.Equal(t, "Pictures", table.Classify(".JPG"))
			},
		},
		{
			name:   "empty_yaml_uses_defaults",
			file:   "config.yml",
			config: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default().BatchSize, cfg.BatchSize)
				assert.Equal(t, "Others", cfg.Fallback)
				assert.Len(t, cfg.Categories, 6)
				assert.Equal(t, DefaultLogFile(), cfg.Log.File)
				assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
			},
		},
		{
			name: "valid_hcl",
			file: "config.hcl",
			config: `
directory  = "${home}/Downloads"
batch_size = 10

category "Documents" {
  extensions = [".pdf", ".md"]
}

category "Others" {}

log {
  level = "warn"
}
`,
			check: func(t *testing.T, cfg *Config) {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(home, "Downloads"), filepath.Clean(cfg.Directory))
				assert.Equal(t, 10, cfg.BatchSize)
				require.Len(t, cfg.Categories, 2)
				assert.Equal(t, CategoryConfig{Name: "Documents", Extensions: []string{".pdf", ".md"}}, cfg.Categories[0])
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, DefaultLogFile(), cfg.Log.File)
			},
		},
		{
			name: "valid_json",
			file: "config.json",
			config: `{
  "directory": "/data/inbox",
  "dry_run": true,
  "categories": [{"name": "Code", "extensions": ["go", "rs"]}]
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/data/inbox", cfg.Directory)
				assert.True(t, cfg.DryRun)
				assert.Equal(t, []string{".go", ".rs"}, cfg.Categories[0].Extensions)

				table, err := cfg.Table()
				require.NoError(t, err)
				assert.Equal(t, []string{"Code", "Others"}, table.Names(), "fallback is appended")
			},
		},
		{
			name:        "unknown_yaml_field",
			file:        "config.yaml",
			config:      "directroy: /tmp\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "config.json",
			config:      `{"bogus": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "bad_hcl",
			file:        "config.hcl",
			config:      `category {`,
			wantErr:     true,
			errContains: "HCL",
		},
		{
			name:        "unsupported_extension",
			file:        "config.toml",
			config:      "directory = '/tmp'",
			wantErr:     true,
			errContains: "no parser found",
		},
		{
			name: "duplicate_category",
			file: "config.yaml",
			config: `
categories:
  - name: Images
    extensions: [.png]
  - name: Images
    extensions: [.jpg]
`,
			wantErr:     true,
			errContains: "duplicate category",
		},
		{
			name: "fallback_with_extensions",
			file: "config.yaml",
			config: `
categories:
  - name: Others
    extensions: [.bin]
`,
			wantErr:     true,
			errContains: "must not list extensions",
		},
		{
			name: "empty_category_name",
			file: "config.yaml",
			config: `
categories:
  - name: " "
    extensions: [.bin]
`,
			wantErr:     true,
			errContains: "category name is required",
		},
		{
			name:        "negative_batch_size",
			file:        "config.yaml",
			config:      "batch_size: -1\n",
			wantErr:     true,
			errContains: "batch_size must be positive",
		},
		{
			name:        "unknown_log_level",
			file:        "config.yaml",
			config:      "log:\n  level: loud\n",
			wantErr:     true,
			errContains: "log.level",
		},
		{
			name:        "bad_exclude_pattern",
			file:        "config.yaml",
			config:      "exclude: ['[oops']\n",
			wantErr:     true,
			errContains: "invalid pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0o644))

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"Documents", "Images", "Videos", "Audio", "Archives", "Others"}, table.Names())
	assert.Equal(t, "Archives", table.Classify(".gz"))
	assert.Equal(t, 100, cfg.BatchSize)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.Location())
	assert.Contains(t, cfg.String(), "<unset>")
	assert.True(t, filepath.IsAbs(cfg.Log.File), "log file %q should not depend on the working directory", cfg.Log.File)
	assert.Equal(t, "organizer.log", filepath.Base(cfg.Log.File))
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("A.YML"))
	assert.IsType(t, &HCLParser{}, GetParser(".cleanmyfiles.hcl"))
	assert.IsType(t, &JSONParser{}, GetParser("dir/config.json"))
	assert.Nil(t, GetParser("config"))
}
