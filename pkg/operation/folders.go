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

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrBaseDirectory marks failures of the base directory itself, as opposed
// to a single category folder
var ErrBaseDirectory = errors.Base("base directory unavailable")

// 📁 EnsureCategoryFolders makes sure every category has a folder directly
// under base. Every category is attempted, failures are logged and joined
// into the returned error. Existing folders are left alone.
func EnsureCategoryFolders(ctx context.Context, base string, table *category.Table, logger log.Sink) ([]string, error) {
	if logger == nil {
		logger = log.Nop()
	}
	zerolog.Ctx(ctx).Debug().Str("base", base).Strs("categories", table.Names()).Msg("ensuring category folders")

	if err := CheckBase(base); err != nil {
		return nil, err
	}

	var (
		folders []string
		errs    []error
	)
	for _, name := range table.Names() {
		folder := filepath.Join(base, name)

		created, err := ensureFolder(folder)
		if err != nil {
			logger.Errorf("Failed to create folder %s: %v", folder, err)
			errs = append(errs, errors.Errorf("category %s: %w", name, err))
			continue
		}

		if created {
			logger.Infof("Created folder: %s", folder)
		} else {
			logger.Infof("Folder already exists: %s", folder)
		}
		folders = append(folders, folder)
	}

	if len(errs) > 0 {
		return folders, errors.Join(errs...)
	}
	return folders, nil
}

// CheckBase fails with ErrBaseDirectory unless base is an existing directory
func CheckBase(base string) error {
	info, err := os.Stat(base)
	if err != nil {
		return errors.Join(ErrBaseDirectory, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s is not a directory", ErrBaseDirectory, base)
	}
	return nil
}

// ensureFolder reports whether it had to create path
func ensureFolder(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, errors.Errorf("%s exists and is not a directory", path)
	case !errors.Is(err, fs.ErrNotExist):
		return false, errors.Errorf("checking folder: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, errors.Errorf("creating folder: %w", err)
	}
	return true, nil
}
