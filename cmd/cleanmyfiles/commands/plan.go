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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/cleanmyfiles/cmd/cleanmyfiles/opts"
	"github.com/walteh/cleanmyfiles/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Show where every file would be moved",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dir, err := o.Directory(ctx, args)
			if err != nil {
				return err
			}

			pipeline, err := o.Pipeline(ctx, nil)
			if err != nil {
				return errors.Errorf("creating pipeline: %w", err)
			}

			records, err := pipeline.Scan(ctx, dir)
			if err != nil {
				return errors.Errorf("scanning %s: %w", dir, err)
			}

			count := 0
			for plan := range pipeline.Plan(records, dir) {
				fmt.Fprintln(o.Out, plan.String())
				count++
			}

			log.FromContext(ctx).Successf("Planned %d moves.", count)
			return nil
		},
	}

	return cmd
}
