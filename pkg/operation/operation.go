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
	"iter"

	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// DefaultBatchSize bounds how many plans are buffered between progress logs
const DefaultBatchSize = 100

// 🎯 Operator is what a front-end calls, in order, to organize a directory
type Operator interface {
	// EnsureCategoryFolders creates one folder per category under dir
	EnsureCategoryFolders(ctx context.Context, dir string) ([]string, error)
	// Scan lists the files under dir that still need organizing
	Scan(ctx context.Context, dir string) (iter.Seq[scan.FileRecord], error)
	// Plan maps records to destinations under dir
	Plan(records iter.Seq[scan.FileRecord], dir string) iter.Seq[MovePlan]
	// Organize executes plans and returns how many files moved
	Organize(ctx context.Context, plans iter.Seq[MovePlan]) int
}

// 👀 Observer is told about every move attempt
type Observer interface {
	Observe(ctx context.Context, result Result)
}

// 🔧 Options contains configuration for the pipeline
type Options struct {
	// Table decides categories, defaults to category.Default()
	Table *category.Table
	// Logger receives info, warning and error messages
	Logger log.Sink
	// BatchSize is the number of plans executed between cancellation checks
	BatchSize int
	// DryRun plans and reports without touching the filesystem
	DryRun bool
	// Exclude holds doublestar patterns the scanner ignores
	Exclude []string
	// Ignore holds file paths the scanner never yields
	Ignore []string
	// Observer is optional
	Observer Observer
}

// 🎮 Pipeline wires the scanner, planner, mover and organizer together
type Pipeline struct {
	table     *category.Table
	logger    log.Sink
	scanner   *scan.Scanner
	organizer *Organizer
	dryRun    bool
}

var _ Operator = (*Pipeline)(nil)

// 🏭 New creates a new pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Table == nil {
		opts.Table = category.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Nop()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	scanner, err := scan.New(scan.Options{
		Table:   opts.Table,
		Logger:  opts.Logger,
		Exclude: opts.Exclude,
		Ignore:  opts.Ignore,
	})
	if err != nil {
		return nil, errors.Errorf("creating scanner: %w", err)
	}

	mover := NewMover(opts.Logger, opts.DryRun)

	return &Pipeline{
		table:     opts.Table,
		logger:    opts.Logger,
		scanner:   scanner,
		organizer: NewOrganizer(mover, opts.Logger, opts.BatchSize, opts.Observer),
		dryRun:    opts.DryRun,
	}, nil
}

// Table returns the category table in use
func (p *Pipeline) Table() *category.Table {
	return p.table
}

func (p *Pipeline) EnsureCategoryFolders(ctx context.Context, dir string) ([]string, error) {
	return EnsureCategoryFolders(ctx, dir, p.table, p.logger)
}

func (p *Pipeline) Scan(ctx context.Context, dir string) (iter.Seq[scan.FileRecord], error) {
	return p.scanner.Scan(ctx, dir)
}

func (p *Pipeline) Plan(records iter.Seq[scan.FileRecord], dir string) iter.Seq[MovePlan] {
	return Plan(records, dir, p.table)
}

func (p *Pipeline) Organize(ctx context.Context, plans iter.Seq[MovePlan]) int {
	return p.organizer.Organize(ctx, plans)
}

// 🏃 Run performs folder setup, scan, plan and organize for dir.
// Only precondition failures on dir itself are returned as errors.
// A dry run skips folder setup.
func (p *Pipeline) Run(ctx context.Context, dir string) (int, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("dir", dir).Msg("organizing directory")

	if p.dryRun {
		// folders are left alone too, the mover reports what it would do
		if err := CheckBase(dir); err != nil {
			return 0, errors.Errorf("checking directory: %w", err)
		}
	} else if _, err := p.EnsureCategoryFolders(ctx, dir); err != nil {
		if errors.Is(err, ErrBaseDirectory) {
			return 0, errors.Errorf("preparing category folders: %w", err)
		}
		logger.Debug().Err(err).Msg("some category folders could not be created")
	}

	records, err := p.Scan(ctx, dir)
	if err != nil {
		return 0, errors.Errorf("scanning: %w", err)
	}

	return p.Organize(ctx, p.Plan(records, dir)), nil
}
