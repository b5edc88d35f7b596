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
	"context"
	"iter"

	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/log"
)

// 📦 Organizer drives plans through a Mover in fixed-size batches
type Organizer struct {
	mover     *Mover
	logger    log.Sink
	batchSize int
	observer  Observer
}

// 🏭 NewOrganizer creates an organizer. observer may be nil.
func NewOrganizer(mover *Mover, logger log.Sink, batchSize int, observer Observer) *Organizer {
	if logger == nil {
		logger = log.Nop()
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Organizer{
		mover:     mover,
		logger:    logger,
		batchSize: batchSize,
		observer:  observer,
	}
}

// 📦 Organize moves every plan, one at a time, and returns how many moved.
// A failing plan is logged and skipped. Cancelling ctx stops the run at the
// next batch boundary. Cancellation is checked only between batches and after
// plans is drained, and the unflushed tail batch is dropped in both cases:
// with a ctx that is already cancelled, a short sequence moves nothing even
// if every plan was produced.
func (o *Organizer) Organize(ctx context.Context, plans iter.Seq[MovePlan]) int {
	logger := zerolog.Ctx(ctx)

	var (
		moved   int
		batches int
		batch   = make([]MovePlan, 0, o.batchSize)
	)

	flush := func() {
		for _, plan := range batch {
			result := o.mover.Move(ctx, plan)
			if o.observer != nil {
				o.observer.Observe(ctx, result)
			}
			switch {
			case result.OK():
				moved++
			case result.Outcome != OutcomePlanned:
				o.logger.Warningf("Failed to move: %s", plan.Source)
			}
		}
		batches++
		logger.Debug().Int("batch", batches).Int("size", len(batch)).Int("moved", moved).Msg("batch complete")
		batch = batch[:0]
	}

	cancelled := false
	for plan := range plans {
		batch = append(batch, plan)
		if len(batch) < o.batchSize {
			continue
		}
		flush()
		if ctx.Err() != nil {
			cancelled = true
			break
		}
	}
	// the scan also stops on cancellation, so a short last batch may be a cut one
	if !cancelled && ctx.Err() != nil {
		cancelled = true
	}
	if !cancelled && len(batch) > 0 {
		flush()
	}

	if cancelled {
		o.logger.Warningf("Organizing cancelled after %d batches", batches)
	}
	o.logger.Infof("Organized %d files.", moved)
	return moved
}
