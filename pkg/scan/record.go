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

package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/walteh/cleanmyfiles/pkg/category"
	"gitlab.com/tozd/go/errors"
)

// TimeFormat is the layout of FileRecord.LastModified
const TimeFormat = "2006-01-02 15:04:05"

// 📄 FileRecord is the metadata captured for one regular file
type FileRecord struct {
	Name         string    // Base name
	Path         string    // Absolute path
	Extension    string    // Lowercase, dot included, empty when none
	SizeKB       float64   // Size in bytes / 1024
	LastModified string    // ModTime formatted with TimeFormat
	ModTime      time.Time // Raw modification time
}

// 🔍 Extract reads the metadata of the file at path
func Extract(path string) (FileRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileRecord{}, errors.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return FileRecord{}, errors.Errorf("reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return FileRecord{}, errors.Errorf("%s is not a regular file", abs)
	}

	return FileRecord{
		Name:         info.Name(),
		Path:         abs,
		Extension:    category.Extension(info.Name()),
		SizeKB:       float64(info.Size()) / 1024,
		LastModified: info.ModTime().Format(TimeFormat),
		ModTime:      info.ModTime(),
	}, nil
}

// 📝 String renders the record as a listing line
func (r FileRecord) String() string {
	return fmt.Sprintf("%s | %s | %.2f KB | Last Modified: %s", r.Name, r.Extension, r.SizeKB, r.LastModified)
}
