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
	"fmt"
	"iter"
	"path/filepath"

	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/scan"
)

// 🗺️ MovePlan is one file's computed destination, not yet executed
type MovePlan struct {
	Source      string
	Destination string
	Category    string
}

func (p MovePlan) String() string {
	return fmt.Sprintf("%s -> %s (%s)", p.Source, p.Destination, p.Category)
}

// 🗺️ PlanRecord maps a single record to base/<category>/<name>
func PlanRecord(rec scan.FileRecord, base string, table *category.Table) MovePlan {
	cat := table.Classify(rec.Extension)
	return MovePlan{
		Source:      rec.Path,
		Destination: filepath.Join(base, cat, rec.Name),
		Category:    cat,
	}
}

// 🗺️ Plan lazily maps records to move plans in input order. Name collisions
// are left for the mover to detect.
func Plan(records iter.Seq[scan.FileRecord], base string, table *category.Table) iter.Seq[MovePlan] {
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return func(yield func(MovePlan) bool) {
		for rec := range records {
			if rec.Path == "" {
				continue
			}
			if !yield(PlanRecord(rec, base, table)) {
				return
			}
		}
	}
}
