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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/cleanmyfiles/cmd/cleanmyfiles/opts"
	"gitlab.com/tozd/go/errors"
)

// NewCategoriesCmd creates a new categories command
func NewCategoriesCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the category table in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(o.Table.Categories()))
			for _, c := range o.Table.Categories() {
				exts := strings.Join(c.Extensions, " ")
				if c.Name == o.Table.Fallback() {
					exts = "(everything else)"
				}
				rows = append(rows, []string{c.Name, exts})
			}

			if err := o.UserLogger.Table([]string{"Category", "Extensions"}, rows); err != nil {
				return errors.Errorf("rendering categories: %w", err)
			}

			for _, overlap := range o.Table.Overlaps() {
				o.UserLogger.LogValidation(false, fmt.Sprintf("%s is listed by %s and %s, %s wins",
					overlap.Extension, overlap.Winner, strings.Join(overlap.Shadowed, ", "), overlap.Winner), nil)
			}

			return nil
		},
	}

	return cmd
}
