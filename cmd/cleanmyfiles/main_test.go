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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// 🧪 cliEnv is a scratch directory with a config file and a log file
type cliEnv struct {
	dir     string // folder to organize
	config  string
	logFile string
}

func newCLIEnv(t *testing.T, extraConfig string) cliEnv {
	t.Helper()
	root := t.TempDir()
	env := cliEnv{
		dir:     filepath.Join(root, "inbox"),
		config:  filepath.Join(root, "config.yaml"),
		logFile: filepath.Join(root, "logs", "organizer.log"),
	}
	require.NoError(t, os.MkdirAll(env.dir, 0o755))

	cfg := "log:\n  file: " + env.logFile + "\n" + extraConfig
	require.NoError(t, os.WriteFile(env.config, []byte(cfg), 0o644))
	return env
}

func (e cliEnv) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(e.dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func (e cliEnv) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	code := run(ctx, append([]string{"--config", e.config}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestOrganizeCommand(t *testing.T) {
	env := newCLIEnv(t, "")
	env.write(t, "report.pdf", strings.Repeat("r", 10*1024))
	env.write(t, "photo.jpg", "jpg")
	env.write(t, "archive.tar.gz", "gz")
	env.write(t, "unknown.xyz", "xyz")

	code, out, errOut := env.run(t, "organize", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	assert.FileExists(t, filepath.Join(env.dir, "Documents", "report.pdf"))
	assert.FileExists(t, filepath.Join(env.dir, "Images", "photo.jpg"))
	assert.FileExists(t, filepath.Join(env.dir, "Archives", "archive.tar.gz"))
	assert.FileExists(t, filepath.Join(env.dir, "Others", "unknown.xyz"))
	assert.Contains(t, out, "Organized 4 files.")
	assert.Contains(t, out, "Created folder:")

	logData, err := os.ReadFile(env.logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "- INFO - Organized 4 files.")

	// running again finds nothing to do
	code, out, _ = env.run(t, "organize", env.dir)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Organized 0 files.")
	assert.Contains(t, out, "Folder already exists:")
}

// 🧪 chdir moves into dir for the rest of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestOrganizeWorkingDirectoryKeepsLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("LocalAppData", filepath.Join(home, "AppData"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("pdf"), 0o644))
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	code := run(ctx, []string{"organize", "."}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Organized 1 files.")
	assert.FileExists(t, filepath.Join(dir, "Documents", "report.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "Others", "organizer.log"))
	assert.NoDirExists(t, filepath.Join(dir, "logs"))

	// a log file placed inside the folder stays where it is
	stdout.Reset()
	code = run(ctx, []string{"--log-file", "organizer.log", "organize", "."}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Organized 0 files.")
	assert.FileExists(t, filepath.Join(dir, "organizer.log"))
	assert.NoFileExists(t, filepath.Join(dir, "Others", "organizer.log"))
}

func TestOrganizeDirectoryFromConfig(t *testing.T) {
	root := t.TempDir()
	inbox := filepath.Join(root, "from-config")
	require.NoError(t, os.MkdirAll(inbox, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "song.mp3"), []byte("mp3"), 0o644))

	env := newCLIEnv(t, "directory: "+inbox+"\n")

	code, _, errOut := env.run(t, "organize")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.FileExists(t, filepath.Join(inbox, "Audio", "song.mp3"))
}

func TestOrganizeWithoutDirectory(t *testing.T) {
	env := newCLIEnv(t, "")

	code, out, errOut := env.run(t, "organize")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Please select a folder first.")
	assert.Empty(t, errOut, "the warning is the only message")
}

func TestOrganizeMissingDirectory(t *testing.T) {
	env := newCLIEnv(t, "")

	code, _, errOut := env.run(t, "organize", filepath.Join(env.dir, "nope"))

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "base directory unavailable")
}

func TestOrganizeDryRun(t *testing.T) {
	env := newCLIEnv(t, "")
	env.write(t, "clip.mp4", "mp4")

	code, out, errOut := env.run(t, "--dry-run", "organize", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	assert.FileExists(t, filepath.Join(env.dir, "clip.mp4"))
	assert.NoFileExists(t, filepath.Join(env.dir, "Videos", "clip.mp4"))
	assert.Contains(t, out, "Would move:")
	assert.Contains(t, out, "Organized 0 files.")
	assert.Contains(t, out, "Dry run, nothing will be moved")
	assert.Contains(t, out, "Dry run finished, 1 files would move")
}

func TestOrganizeQuiet(t *testing.T) {
	env := newCLIEnv(t, "")
	env.write(t, "a.txt", "a")

	code, out, errOut := env.run(t, "-q", "organize", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)
	assert.Empty(t, out)

	logData, err := os.ReadFile(env.logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Organized 1 files.")
}

func TestSetupCommand(t *testing.T) {
	env := newCLIEnv(t, "")

	code, out, errOut := env.run(t, "setup", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	for _, name := range []string{"Documents", "Images", "Videos", "Audio", "Archives", "Others"} {
		assert.DirExists(t, filepath.Join(env.dir, name))
	}
	assert.Contains(t, out, "6 category folders ready")
}

func TestScanCommand(t *testing.T) {
	env := newCLIEnv(t, "")
	env.write(t, "report.pdf", strings.Repeat("r", 10*1024))
	env.write(t, "Images/old.png", "png")

	code, out, errOut := env.run(t, "scan", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	assert.Contains(t, out, "report.pdf | .pdf | 10.00 KB | Last Modified: ")
	assert.NotContains(t, out, "old.png", "category folders are skipped")
	assert.Contains(t, out, "Found 1 files.")
}

func TestPlanCommand(t *testing.T) {
	env := newCLIEnv(t, "")
	env.write(t, "photo.JPG", "jpg")

	code, out, errOut := env.run(t, "plan", env.dir)
	require.Equal(t, 0, code, "stderr: %s", errOut)

	assert.Contains(t, out, filepath.Join(env.dir, "photo.JPG")+" -> "+filepath.Join(env.dir, "Images", "photo.JPG")+" (Images)")
	assert.Contains(t, out, "Planned 1 moves.")
	assert.FileExists(t, filepath.Join(env.dir, "photo.JPG"), "plan never moves")
}

func TestCategoriesCommand(t *testing.T) {
	env := newCLIEnv(t, `
categories:
  - name: Code
    extensions: [.go, .py]
  - name: Scripts
    extensions: [.py, .sh]
`)

	code, out, errOut := env.run(t, "categories")
	require.Equal(t, 0, code, "stderr: %s", errOut)

	assert.Contains(t, out, "Code")
	assert.Contains(t, out, "Scripts")
	assert.Contains(t, out, "(everything else)")
	assert.Contains(t, out, ".py is listed by Code and Scripts, Code wins")
}

func TestBadConfig(t *testing.T) {
	env := newCLIEnv(t, "batch_size: -5\n")

	code, _, errOut := env.run(t, "scan", env.dir)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "batch_size must be positive")
}

func TestBatchSizeFlagOverride(t *testing.T) {
	env := newCLIEnv(t, "")

	code, _, errOut := env.run(t, "--batch-size=-1", "scan", env.dir)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "batch_size must be positive")
}

func TestVersionCommand(t *testing.T) {
	env := newCLIEnv(t, "")

	code, out, _ := env.run(t, "version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "cleanmyfiles version info")
	assert.NoFileExists(t, env.logFile, "version does not open the log")
}
