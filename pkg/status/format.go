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

	"github.com/walteh/cleanmyfiles/pkg/operation"
)

// FileFormatter defines how move results and progress should be formatted
type FileFormatter interface {
	// FormatMove formats the result of one move attempt
	FormatMove(result operation.Result) string

	// FormatProgress formats a progress message. The total is unknown
	// while the scan is still running.
	FormatProgress(processed, moved int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatMove formats a move result with emojis
func (f *DefaultFileFormatter) FormatMove(result operation.Result) string {
	name := filepath.Base(result.Plan.Source)
	switch result.Outcome {
	case operation.OutcomeMoved:
		return fmt.Sprintf("✨ Moved %s to %s", name, result.Plan.Category)
	case operation.OutcomeDuplicate:
		return fmt.Sprintf("👯 Kept %s, already in %s", name, result.Plan.Category)
	case operation.OutcomeMissing:
		return fmt.Sprintf("👻 Missing %s", name)
	case operation.OutcomePlanned:
		return fmt.Sprintf("📝 Would move %s to %s", name, result.Plan.Category)
	case operation.OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s", name)
	default:
		return fmt.Sprintf("❔ Unknown %s", name)
	}
}

// FormatProgress formats a running progress message
func (f *DefaultFileFormatter) FormatProgress(processed, moved int) string {
	if processed == 0 {
		return "⏳ Waiting for files"
	}
	return fmt.Sprintf("⏳ Processed %d files (%d moved)", processed, moved)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
