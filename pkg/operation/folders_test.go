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

package operation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func listDirs(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestEnsureCategoryFoldersIdempotent(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	table := category.Default()

	rec := log.NewRecorder()
	folders, err := operation.EnsureCategoryFolders(ctx, dir, table, rec)
	require.NoError(t, err)
	require.Len(t, folders, 6)
	assert.Equal(t, filepath.Join(dir, "Documents"), folders[0])
	assert.Len(t, rec.Messages(zerolog.InfoLevel), 6)
	assert.True(t, rec.Contains(zerolog.InfoLevel, "Created folder: "+filepath.Join(dir, "Others")))

	first := listDirs(t, dir)
	assert.ElementsMatch(t, table.Names(), first)

	rec = log.NewRecorder()
	folders, err = operation.EnsureCategoryFolders(ctx, dir, table, rec)
	require.NoError(t, err, "second run should not fail")
	assert.Len(t, folders, 6)
	assert.Equal(t, first, listDirs(t, dir), "second run should not change the folder set")
	assert.True(t, rec.Contains(zerolog.InfoLevel, "Folder already exists"))
	assert.Empty(t, rec.Messages(zerolog.ErrorLevel))
}

func TestEnsureCategoryFoldersPartialFailure(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	writeFile(t, dir, "Images", "not a folder")

	rec := log.NewRecorder()
	folders, err := operation.EnsureCategoryFolders(ctx, dir, category.Default(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Images")
	assert.False(t, errors.Is(err, operation.ErrBaseDirectory))

	assert.Len(t, folders, 5, "the other categories should still be created")
	for _, name := range []string{"Documents", "Videos", "Audio", "Archives", "Others"} {
		assert.DirExists(t, filepath.Join(dir, name))
	}
	assert.Len(t, rec.Messages(zerolog.ErrorLevel), 1)
}

func TestEnsureCategoryFoldersBadBase(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	_, err := operation.EnsureCategoryFolders(ctx, filepath.Join(dir, "missing"), category.Default(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrBaseDirectory))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoDirExists(t, filepath.Join(dir, "missing"))

	file := writeFile(t, dir, "plain.txt", "x")
	_, err = operation.EnsureCategoryFolders(ctx, file, category.Default(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrBaseDirectory))
}

func TestEnsureCategoryFoldersCustomTable(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	table, err := category.New("misc", category.Category{Name: "Code", Extensions: []string{".go"}})
	require.NoError(t, err)

	_, err = operation.EnsureCategoryFolders(ctx, dir, table, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Code", "misc"}, listDirs(t, dir))
}
