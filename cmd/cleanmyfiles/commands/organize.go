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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cleanmyfiles/cmd/cleanmyfiles/opts"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"github.com/walteh/cleanmyfiles/pkg/operation"
	"github.com/walteh/cleanmyfiles/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewOrganizeCmd creates a new organize command
func NewOrganizeCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Sort files into category folders",
		Long: `Organize moves every file under dir into a folder named after its category.
It will:
1. Create the category folders
2. Scan dir, skipping folders that are already categories
3. Plan a destination for every file
4. Move the files, keeping any file that already exists at the destination`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "organize").Logger().WithContext(cmd.Context())

			logger := log.FromContext(ctx)

			dir, err := o.Directory(ctx, args)
			if err != nil {
				return err
			}

			tracker := status.New(o.Table, zerolog.Ctx(ctx))
			pipeline, err := o.Pipeline(ctx, tracker)
			if err != nil {
				return errors.Errorf("creating pipeline: %w", err)
			}

			logger.Header("Organizing " + dir)
			if o.Config.DryRun {
				o.UserLogger.LogStateChange("Dry run, nothing will be moved")
			}

			var moved int
			runner := operation.NewRunner(zerolog.Ctx(ctx), true)
			job := runner.Start(ctx, func(ctx context.Context) error {
				n, err := pipeline.Run(ctx, dir)
				moved = n
				return err
			})

			if err := o.UserLogger.Wait("Organizing files", job, tracker.Progress); err != nil {
				return errors.Errorf("organizing %s: %w", dir, err)
			}

			summary := tracker.Summary()
			if summary.Total.Total() > 0 {
				logger.LogNewline()
				if err := o.UserLogger.Table(status.SummaryHeader, summary.Rows()); err != nil {
					zerolog.Ctx(ctx).Debug().Err(err).Msg("rendering summary table")
				}
			}
			for _, problem := range tracker.Problems() {
				o.UserLogger.Println(status.FormatMoveLine(problem))
			}

			if o.Config.DryRun {
				logger.Successf("Dry run finished, %d files would move", summary.Total.Planned)
			}
			logger.Debugf("organize finished: %d moved, %d processed", moved, tracker.Processed())
			return nil
		},
	}

	return cmd
}
