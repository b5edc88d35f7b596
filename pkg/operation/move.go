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
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// Move errors
var (
	ErrSourceMissing     = errors.Base("source file not found")
	ErrDestinationExists = errors.Base("destination already exists")
)

// 📊 Outcome is what happened to one plan
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeMoved             // File relocated
	OutcomeMissing           // Source vanished since the scan
	OutcomeDuplicate         // Destination taken, source left in place
	OutcomeFailed            // I/O error, source untouched
	OutcomePlanned           // Dry run, nothing touched
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeMissing:
		return "missing"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeFailed:
		return "failed"
	case OutcomePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// 📋 Result is the outcome of one move attempt
type Result struct {
	Plan    MovePlan
	Outcome Outcome
	Err     error
}

// OK reports whether the file was actually moved
func (r Result) OK() bool {
	return r.Outcome == OutcomeMoved
}

// 🚚 Mover executes single move plans
type Mover struct {
	logger log.Sink
	dryRun bool
}

// 🏭 NewMover creates a mover. In dry-run mode it checks but never moves.
func NewMover(logger log.Sink, dryRun bool) *Mover {
	if logger == nil {
		logger = log.Nop()
	}
	return &Mover{logger: logger, dryRun: dryRun}
}

// 🚚 Move relocates plan.Source to plan.Destination unless the source is gone
// or the destination is already taken. Exactly one message is logged per call.
func (m *Mover) Move(ctx context.Context, plan MovePlan) Result {
	zerolog.Ctx(ctx).Debug().Str("source", plan.Source).Str("destination", plan.Destination).Msg("moving file")

	if _, err := os.Lstat(plan.Source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Warningf("Source file not found, skipping: %s", plan.Source)
			return Result{Plan: plan, Outcome: OutcomeMissing, Err: ErrSourceMissing}
		}
		m.logger.Errorf("Failed to move %s: %v", plan.Source, err)
		return Result{Plan: plan, Outcome: OutcomeFailed, Err: errors.Errorf("checking source: %w", err)}
	}

	if _, err := os.Lstat(plan.Destination); err == nil {
		m.logger.Infof("Skipped (already exists): %s", plan.Destination)
		return Result{Plan: plan, Outcome: OutcomeDuplicate, Err: ErrDestinationExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		m.logger.Errorf("Failed to move %s: %v", plan.Source, err)
		return Result{Plan: plan, Outcome: OutcomeFailed, Err: errors.Errorf("checking destination: %w", err)}
	}

	if m.dryRun {
		m.logger.Infof("Would move: %s", plan)
		return Result{Plan: plan, Outcome: OutcomePlanned}
	}

	if err := moveFile(plan.Source, plan.Destination); err != nil {
		m.logger.Errorf("Failed to move %s -> %s: %v", plan.Source, plan.Destination, err)
		return Result{Plan: plan, Outcome: OutcomeFailed, Err: err}
	}

	m.logger.Infof("Moved: %s -> %s", plan.Source, plan.Destination)
	return Result{Plan: plan, Outcome: OutcomeMoved}
}

// moveFile renames src to dst, falling back to copy and delete across devices
func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Errorf("creating target directory: %w", err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return errors.Errorf("renaming file: %w", err)
	}

	if err := copyAcrossDevices(src, dst); err != nil {
		return errors.Errorf("copying file across devices: %w", err)
	}
	if err := os.Remove(src); err != nil {
		// keep a single copy, the source wins
		_ = os.Remove(dst)
		return errors.Errorf("removing source after copy: %w", err)
	}
	return nil
}

// copyAcrossDevices writes src into a temp file next to dst and renames it
// into place, so dst is either complete or absent
func copyAcrossDevices(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("reading source info: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".cleanmyfiles-*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	written, err := io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		return errors.Errorf("copying data: %w", err)
	}
	if written != info.Size() {
		tmp.Close()
		return errors.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return errors.Errorf("setting permissions: %w", err)
	}
	if err := os.Chtimes(tmpPath, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("setting times: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
