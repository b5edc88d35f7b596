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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// DefaultLogLevel is the minimum level written to the log file
const DefaultLogLevel = "info"

// 📝 DefaultLogFile is where the log file goes unless configured otherwise.
// It lives in the user cache directory so it never sits inside a folder
// being organized.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "cleanmyfiles", "logs", "organizer.log")
}

// 📂 CategoryConfig describes one category folder and the extensions it owns
type CategoryConfig struct {
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// 📝 LogConfig controls the log file and console output
type LogConfig struct {
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	Quiet bool   `json:"quiet,omitempty" yaml:"quiet,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Directory  string           `json:"directory,omitempty" yaml:"directory,omitempty"`
	BatchSize  int              `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	DryRun     bool             `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Exclude    []string         `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Fallback   string           `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Categories []CategoryConfig `json:"categories,omitempty" yaml:"categories,omitempty"`
	Log        LogConfig        `json:"log,omitempty" yaml:"log,omitempty"`

	location string
}

// 🎯 Default returns a config with every default filled in
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

func (cfg *Config) applyDefaults() {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = operation.DefaultBatchSize
	}
	if strings.TrimSpace(cfg.Fallback) == "" {
		cfg.Fallback = category.Others
	}
	if len(cfg.Categories) == 0 {
		for _, c := range category.Default().Categories() {
			cfg.Categories = append(cfg.Categories, CategoryConfig{Name: c.Name, Extensions: c.Extensions})
		}
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultLogFile()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// 🔍 Validate fills defaults, normalises extensions and checks that the
// configuration is usable
func (cfg *Config) Validate() error {
	cfg.applyDefaults()

	if cfg.BatchSize < 1 {
		return errors.Errorf("batch_size must be positive, got %d", cfg.BatchSize)
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return errors.Errorf("log.level: %w", err)
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude: invalid pattern %q", pattern)
		}
	}

	cfg.Fallback = strings.TrimSpace(cfg.Fallback)
	for i := range cfg.Categories {
		cfg.Categories[i].Name = strings.TrimSpace(cfg.Categories[i].Name)
		for j, ext := range cfg.Categories[i].Extensions {
			cfg.Categories[i].Extensions[j] = category.NormalizeExtension(ext)
		}
	}

	if _, err := cfg.Table(); err != nil {
		return errors.Errorf("categories: %w", err)
	}

	return nil
}

// 📚 Table builds the category table described by the config
func (cfg *Config) Table() (*category.Table, error) {
	cats := make([]category.Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		cats = append(cats, category.Category{Name: c.Name, Extensions: c.Extensions})
	}
	return category.New(cfg.Fallback, cats...)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	dir := cfg.Directory
	if dir == "" {
		dir = "<unset>"
	}
	return fmt.Sprintf("%s (%d categories, batch %d, dry run %t)", dir, len(cfg.Categories), cfg.BatchSize, cfg.DryRun)
}
