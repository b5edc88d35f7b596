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
	"gitlab.com/tozd/go/errors"
)

// NewSetupCmd creates a new setup command
func NewSetupCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup [dir]",
		Short: "Create the category folders without moving anything",
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

			folders, err := pipeline.EnsureCategoryFolders(ctx, dir)
			if err != nil {
				o.UserLogger.LogValidation(false, fmt.Sprintf("%d of %d category folders ready", len(folders), len(o.Table.Names())), err)
				return errors.Errorf("preparing folders in %s: %w", dir, err)
			}

			o.UserLogger.LogValidation(true, fmt.Sprintf("%d category folders ready", len(folders)), nil)
			return nil
		},
	}

	return cmd
}
