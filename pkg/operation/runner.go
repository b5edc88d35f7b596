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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Task is a unit of blocking work handed to a Runner
type Task func(ctx context.Context) error

// 🏃 Runner executes tasks either inline or on a worker goroutine
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes a task and waits for it
func (r *Runner) Run(ctx context.Context, task Task) error {
	if r.async {
		return r.runAsync(ctx, task)
	}
	return r.runSync(ctx, task)
}

// 🔄 runSync runs a task on the calling goroutine
func (r *Runner) runSync(ctx context.Context, task Task) error {
	return task(ctx)
}

// ⚡ runAsync runs a task on a worker and returns early on cancellation.
// The worker sees the same ctx and is expected to wind down on its own.
func (r *Runner) runAsync(ctx context.Context, task Task) error {
	job := r.Start(ctx, task)

	select {
	case <-ctx.Done():
		r.logger.Debug().Msg("runner cancelled while task in flight")
		return errors.Errorf("operation cancelled: %w", ctx.Err())
	case <-job.Done():
		return job.Wait()
	}
}

// 🧵 Job is a task running on a worker goroutine
type Job struct {
	done chan struct{}
	err  error
}

// Start launches task on a worker goroutine and returns immediately, so the
// caller's goroutine stays free for presentation work
func (r *Runner) Start(ctx context.Context, task Task) *Job {
	job := &Job{done: make(chan struct{})}

	var g errgroup.Group
	g.Go(func() error {
		if err := task(ctx); err != nil {
			return errors.Errorf("executing operation: %w", err)
		}
		return nil
	})

	go func() {
		job.err = g.Wait()
		close(job.done)
	}()

	return job
}

// Done is closed once the task returns
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the task returns and yields its error
func (j *Job) Wait() error {
	<-j.done
	return j.err
}
