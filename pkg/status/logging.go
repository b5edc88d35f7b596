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

package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/cleanmyfiles/pkg/operation"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent file entries
	nameWidth     = 35 // Base width for filename
	categoryWidth = 12 // Width for the category
	outcomeWidth  = 10 // Width for outcome text
)

// 🎯 FormatMoveLine formats a move result as an aligned console line
func FormatMoveLine(result operation.Result) string {
	var prefix string
	switch result.Outcome {
	case operation.OutcomeMoved:
		prefix = color.GreenString("✓")
	case operation.OutcomePlanned:
		prefix = color.CyanString("→")
	case operation.OutcomeDuplicate:
		prefix = color.YellowString("=")
	case operation.OutcomeMissing, operation.OutcomeFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, filepath.Base(result.Plan.Source))
	categoryPart := fmt.Sprintf("%-*s", categoryWidth, result.Plan.Category)
	outcomePart := fmt.Sprintf("%-*s", outcomeWidth, result.Outcome)

	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		categoryPart,
		outcomePart,
	)
	if result.Err != nil && result.Outcome == operation.OutcomeFailed {
		line += color.HiBlackString(" %v", result.Err)
	}
	return strings.TrimRight(line, " ")
}
