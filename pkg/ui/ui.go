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

package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/cleanmyfiles/pkg/operation"
)

// SpinnerInterval is how often the spinner text is refreshed
const SpinnerInterval = 150 * time.Millisecond

// 📢 UserLogger renders command results for people: validation lines,
// tables and a spinner while a job runs
type UserLogger struct {
	out         io.Writer
	log         zerolog.Logger // for debug/error logging
	interactive bool
}

// 🎯 New creates a new user logger writing to out. The spinner is only
// drawn when interactive is set.
func New(ctx context.Context, out io.Writer, interactive bool) *UserLogger {
	if out == nil {
		out = io.Discard
	}
	return &UserLogger{
		out:         out,
		log:         *zerolog.Ctx(ctx),
		interactive: interactive,
	}
}

// 📊 LogStateChange logs a change to the overall state
func (u *UserLogger) LogStateChange(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out).Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
	u.log.Warn().Msg(description)
}

// Println writes a plain line
func (u *UserLogger) Println(line string) {
	fmt.Fprintln(u.out, line)
}

// 📋 Table renders rows under header
func (u *UserLogger) Table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithWriter(u.out).
		WithData(data).
		Render()
}

// ⏳ Wait blocks until job finishes. When interactive, a spinner shows the
// text returned by progress, refreshed every SpinnerInterval.
func (u *UserLogger) Wait(title string, job *operation.Job, progress func() string) error {
	if !u.interactive {
		return job.Wait()
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(u.out).
		WithRemoveWhenDone(false).
		Start(title)
	if err != nil {
		u.log.Debug().Err(err).Msg("spinner unavailable")
		return job.Wait()
	}

	ticker := time.NewTicker(SpinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			spinner.UpdateText(fmt.Sprintf("%s: %s", title, progress()))
		case <-job.Done():
			err := job.Wait()
			if err != nil {
				spinner.Fail(title)
			} else {
				spinner.Success(fmt.Sprintf("%s: %s", title, progress()))
			}
			return err
		}
	}
}
