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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// TimeFormat is the timestamp layout used in the log file
const TimeFormat = "2006-01-02 15:04:05"

// ⚙️ Options configures the process-wide log destination
type Options struct {
	File    string    // Log file path, empty disables the file
	Level   string    // debug, info, warn or error
	Console io.Writer // Console destination, nil for quiet
}

// ParseLevel maps a level name to a zerolog level. Blank means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, errors.Errorf("parsing log level %q: %w", level, err)
	}
	switch lvl {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return lvl, nil
	}
	return zerolog.NoLevel, errors.Errorf("unsupported log level %q", level)
}

// FileWriter formats zerolog events as "<time> - <LEVEL> - <message>"
func FileWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("- %s -", strings.ToUpper(fmt.Sprint(i)))
		},
	}
}

// 🏭 Setup opens the log file and builds the process logger. The returned
// closer releases the file and must be called before exit.
func Setup(opts Options) (*Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	if opts.File == "" {
		zlog := zerolog.Nop()
		return New(opts.Console, zlog), closerFunc(func() error { return nil }), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, errors.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Errorf("opening log file: %w", err)
	}

	zlog := zerolog.New(FileWriter(f)).Level(level).With().Timestamp().Logger()
	return New(opts.Console, zlog), f, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
