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

package operation_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/operation"
	"github.com/walteh/cleanmyfiles/pkg/scan"
)

func TestPlan(t *testing.T) {
	base := t.TempDir()
	records := []scan.FileRecord{
		{Name: "report.pdf", Path: filepath.Join(base, "report.pdf"), Extension: ".pdf"},
		{Name: "unknown.xyz", Path: filepath.Join(base, "sub", "unknown.xyz"), Extension: ".xyz"},
		{},
		{Name: "archive.tar.gz", Path: filepath.Join(base, "archive.tar.gz"), Extension: ".gz"},
		{Name: "report.pdf", Path: filepath.Join(base, "sub", "report.pdf"), Extension: ".pdf"},
		{Name: "README", Path: filepath.Join(base, "README"), Extension: ""},
	}

	got := slices.Collect(operation.Plan(slices.Values(records), base, category.Default()))

	want := []operation.MovePlan{
		{Source: records[0].Path, Destination: filepath.Join(base, "Documents", "report.pdf"), Category: "Documents"},
		{Source: records[1].Path, Destination: filepath.Join(base, "Others", "unknown.xyz"), Category: "Others"},
		{Source: records[3].Path, Destination: filepath.Join(base, "Archives", "archive.tar.gz"), Category: "Archives"},
		{Source: records[4].Path, Destination: filepath.Join(base, "Documents", "report.pdf"), Category: "Documents"},
		{Source: records[5].Path, Destination: filepath.Join(base, "Others", "README"), Category: "Others"},
	}
	require.Equal(t, want, got, "plans should keep input order and not dedupe names")
}

func TestPlanStopsEarly(t *testing.T) {
	base := t.TempDir()
	pulled := 0
	records := func(yield func(scan.FileRecord) bool) {
		for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
			pulled++
			if !yield(scan.FileRecord{Name: name, Path: filepath.Join(base, name), Extension: ".txt"}) {
				return
			}
		}
	}

	for range operation.Plan(records, base, category.Default()) {
		break
	}
	assert.Equal(t, 1, pulled, "planning is lazy")
}

func TestMovePlanString(t *testing.T) {
	p := operation.MovePlan{Source: "/d/a.jpg", Destination: "/d/Images/a.jpg", Category: "Images"}
	assert.Equal(t, "/d/a.jpg -> /d/Images/a.jpg (Images)", p.String())
}
