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
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrNotDirectory is returned when the base path is not a directory
var ErrNotDirectory = errors.Base("not a directory")

// 🔧 Options configures a Scanner
type Options struct {
	Table   *category.Table // Category folders to leave alone
	Logger  log.Sink        // Receives per-file warnings
	Exclude []string        // Doublestar patterns relative to the base directory
	Ignore  []string        // Files never yielded, such as the open log file
}

// 🔍 Scanner walks a directory tree and yields file records
type Scanner struct {
	table   *category.Table
	logger  log.Sink
	exclude []string
	ignore  map[string]bool
}

// 🏭 New creates a scanner
func New(opts Options) (*Scanner, error) {
	if opts.Table == nil {
		return nil, errors.Errorf("category table is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Nop()
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	ignore := make(map[string]bool, len(opts.Ignore))
	for _, path := range opts.Ignore {
		if path == "" {
			continue
		}
		ignore[resolve(path)] = true
	}
	return &Scanner{
		table:   opts.Table,
		logger:  opts.Logger,
		exclude: opts.Exclude,
		ignore:  ignore,
	}, nil
}

// resolve returns the absolute path with the parent's symlinks evaluated.
// The file itself may not exist yet.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if parent, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(parent, filepath.Base(abs))
	}
	return abs
}

// 📂 Scan checks that base is an accessible directory and returns a lazy
// sequence of records below it. Each iteration walks the tree again.
// Folders named after a category are not descended into, files whose metadata
// cannot be read are reported and left out.
func (s *Scanner) Scan(ctx context.Context, base string) (iter.Seq[FileRecord], error) {
	root, err := filepath.Abs(base)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", base, err)
	}

	// WalkDir does not follow a symlinked root
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return nil, errors.Errorf("reading base directory: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("reading base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s: %w", root, ErrNotDirectory)
	}

	dir, err := os.Open(root)
	if err != nil {
		return nil, errors.Errorf("opening base directory: %w", err)
	}
	dir.Close()

	return func(yield func(FileRecord) bool) {
		s.walk(ctx, root, yield)
	}, nil
}

func (s *Scanner) walk(ctx context.Context, root string, yield func(FileRecord) bool) {
	logger := zerolog.Ctx(ctx)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			s.logger.Warningf("Failed to read %s: %v", path, err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.table.IsCategory(d.Name()) {
				logger.Debug().Str("dir", path).Msg("skipping category folder")
				return filepath.SkipDir
			}
			if s.excluded(ctx, rel) {
				logger.Debug().Str("dir", path).Msg("skipping excluded folder")
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug().Str("path", path).Str("type", d.Type().String()).Msg("skipping non-regular file")
			return nil
		}

		if s.excluded(ctx, rel) || s.ignore[path] {
			logger.Debug().Str("path", path).Msg("skipping excluded file")
			return nil
		}

		rec, err := Extract(path)
		if err != nil {
			s.logger.Warningf("Failed to extract metadata for %s: %v", path, err)
			return nil
		}

		if !yield(rec) {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		logger.Debug().Err(err).Str("root", root).Msg("scan stopped early")
	}
}

// 🔍 excluded checks if a relative path matches an exclude pattern
func (s *Scanner) excluded(ctx context.Context, rel string) bool {
	for _, pattern := range s.exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
