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

package log

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// 📼 Entry is one captured message
type Entry struct {
	Level   zerolog.Level
	Message string
}

// 📼 Recorder is a Sink that keeps every message in memory
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Sink = (*Recorder)(nil)

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(level zerolog.Level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Infof(format string, args ...any)    { r.add(zerolog.InfoLevel, format, args...) }
func (r *Recorder) Warningf(format string, args ...any) { r.add(zerolog.WarnLevel, format, args...) }
func (r *Recorder) Errorf(format string, args ...any)   { r.add(zerolog.ErrorLevel, format, args...) }

// Entries returns a copy of everything recorded so far
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the messages recorded at level
func (r *Recorder) Messages(level zerolog.Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr
func (r *Recorder) Contains(level zerolog.Level, substr string) bool {
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}
