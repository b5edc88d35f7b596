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

package opts

import (
	"context"
	"io"

	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/config"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/operation"
	"github.com/walteh/cleanmyfiles/pkg/ui"
	"gitlab.com/tozd/go/errors"
)

// ErrNoDirectory means neither the command line nor the config named a folder
var ErrNoDirectory = errors.Base("no directory selected")

// RootOpts contains shared options used by all commands. The root command
// fills it in before any subcommand runs.
type RootOpts struct {
	Config     *config.Config
	Table      *category.Table
	UserLogger *ui.UserLogger
	Out        io.Writer // command output such as listings

	Closer io.Closer // releases the log file
}

// 📂 Directory picks the folder to work on: the first argument, else the
// configured directory. With neither, the user is warned and ErrNoDirectory
// is returned.
func (o *RootOpts) Directory(ctx context.Context, args []string) (string, error) {
	logger := log.FromContext(ctx)

	dir := o.Config.Directory
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if dir == "" {
		logger.Warning("Please select a folder first.")
		return "", ErrNoDirectory
	}

	abs, err := config.ExpandPath(dir)
	if err != nil {
		return "", errors.Errorf("resolving directory: %w", err)
	}
	logger.Debugf("working on %s", abs)
	return abs, nil
}

// 🏭 Pipeline builds the organizer pipeline from the loaded config
func (o *RootOpts) Pipeline(ctx context.Context, observer operation.Observer) (*operation.Pipeline, error) {
	return operation.New(operation.Options{
		Table:     o.Table,
		Logger:    log.FromContext(ctx),
		BatchSize: o.Config.BatchSize,
		DryRun:    o.Config.DryRun,
		Exclude:   o.Config.Exclude,
		Ignore:    []string{o.Config.Log.File},
		Observer:  observer,
	})
}

// Close releases the log file. Safe to call on a partially built RootOpts.
func (o *RootOpts) Close() error {
	if o == nil || o.Closer == nil {
		return nil
	}
	err := o.Closer.Close()
	o.Closer = nil
	return err
}
