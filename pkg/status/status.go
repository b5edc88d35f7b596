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
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/category"
	"github.com/walteh/cleanmyfiles/pkg/operation"
)

// 📊 Counts holds how many move attempts ended in each outcome
type Counts struct {
	Moved     int
	Missing   int
	Duplicate int
	Failed    int
	Planned   int
}

// Total returns the number of attempts counted
func (c Counts) Total() int {
	return c.Moved + c.Missing + c.Duplicate + c.Failed + c.Planned
}

func (c *Counts) add(o operation.Outcome) {
	switch o {
	case operation.OutcomeMoved:
		c.Moved++
	case operation.OutcomeMissing:
		c.Missing++
	case operation.OutcomeDuplicate:
		c.Duplicate++
	case operation.OutcomeFailed:
		c.Failed++
	case operation.OutcomePlanned:
		c.Planned++
	}
}

// 📁 CategoryCounts are the counts for a single category
type CategoryCounts struct {
	Category string
	Counts
}

// 📋 Summary is a snapshot of everything a Tracker has seen
type Summary struct {
	Categories []CategoryCounts // table order, then unknown categories in arrival order
	Total      Counts
}

// SummaryHeader names the columns produced by Summary.Rows
var SummaryHeader = []string{"Category", "Moved", "Duplicate", "Missing", "Failed", "Planned"}

// Rows renders the summary as table rows, omitting categories with no
// attempts and ending with a total row
func (s Summary) Rows() [][]string {
	rows := make([][]string, 0, len(s.Categories)+1)
	for _, c := range s.Categories {
		if c.Total() == 0 {
			continue
		}
		rows = append(rows, countRow(c.Category, c.Counts))
	}
	return append(rows, countRow("Total", s.Total))
}

func countRow(name string, c Counts) []string {
	return []string{
		name,
		strconv.Itoa(c.Moved),
		strconv.Itoa(c.Duplicate),
		strconv.Itoa(c.Missing),
		strconv.Itoa(c.Failed),
		strconv.Itoa(c.Planned),
	}
}

// 🔧 Tracker records move outcomes per category. It is safe for use from
// the worker goroutine while the presentation goroutine reads snapshots.
type Tracker struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	mu        sync.RWMutex
	order     []string
	counts    map[string]*Counts
	problems  []operation.Result
	processed int
}

var _ operation.Observer = (*Tracker)(nil)

// 🏭 New creates a tracker that reports categories in the table's order
func New(table *category.Table, logger *zerolog.Logger) *Tracker {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	t := &Tracker{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		counts:    make(map[string]*Counts),
	}
	if table != nil {
		for _, name := range table.Names() {
			t.order = append(t.order, name)
			t.counts[name] = &Counts{}
		}
	}
	return t
}

// 👀 Observe implements operation.Observer
func (t *Tracker) Observe(ctx context.Context, result operation.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.counts[result.Plan.Category]
	if !ok {
		c = &Counts{}
		t.counts[result.Plan.Category] = c
		t.order = append(t.order, result.Plan.Category)
	}
	c.add(result.Outcome)
	t.processed++

	if result.Outcome == operation.OutcomeFailed || result.Outcome == operation.OutcomeMissing {
		t.problems = append(t.problems, result)
	}

	t.logger.Debug().
		Str("source", result.Plan.Source).
		Str("category", result.Plan.Category).
		Stringer("outcome", result.Outcome).
		Msg(t.formatter.FormatMove(result))
}

// Processed returns the number of results observed so far
func (t *Tracker) Processed() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.processed
}

// Progress returns a formatted progress line for the current state
func (t *Tracker) Progress() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	moved := 0
	for _, c := range t.counts {
		moved += c.Moved
	}
	return t.formatter.FormatProgress(t.processed, moved)
}

// Problems returns the failed and missing results in arrival order
func (t *Tracker) Problems() []operation.Result {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.problems)
}

// 📋 Summary returns a snapshot of the per-category counts
func (t *Tracker) Summary() Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Summary{Categories: make([]CategoryCounts, 0, len(t.order))}
	for _, name := range t.order {
		c := *t.counts[name]
		s.Categories = append(s.Categories, CategoryCounts{Category: name, Counts: c})
		s.Total.Moved += c.Moved
		s.Total.Missing += c.Missing
		s.Total.Duplicate += c.Duplicate
		s.Total.Failed += c.Failed
		s.Total.Planned += c.Planned
	}
	return s
}
