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

package category

import (
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Default category names
const (
	Documents = "Documents"
	Images    = "Images"
	Videos    = "Videos"
	Audio     = "Audio"
	Archives  = "Archives"
	Others    = "Others"
)

// 📂 Category is a named bucket of extensions that maps to a destination folder
type Category struct {
	Name       string   // Folder name, used verbatim on disk
	Extensions []string // Lowercase extensions including the leading dot
}

// 🔀 Overlap reports an extension claimed by more than one category
type Overlap struct {
	Extension string
	Winner    string   // Category that owns the extension (first in table order)
	Shadowed  []string // Later categories that also list it
}

// 📚 Table is an ordered category table with a designated fallback
type Table struct {
	categories []Category
	fallback   string
	owners     map[string]string
}

// 🏭 New builds a table from categories in lookup order.
// The fallback category is appended last when it is not listed explicitly.
func New(fallback string, categories ...Category) (*Table, error) {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		return nil, errors.Errorf("fallback category is required")
	}

	t := &Table{
		fallback: fallback,
		owners:   make(map[string]string),
	}

	seen := make(map[string]bool, len(categories)+1)
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, errors.Errorf("category name is required")
		}
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return nil, errors.Errorf("category name %q is not a valid folder name", name)
		}
		if seen[name] {
			return nil, errors.Errorf("duplicate category %q", name)
		}
		seen[name] = true

		exts := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			norm := NormalizeExtension(ext)
			if norm == "" {
				return nil, errors.Errorf("category %q has an empty extension", name)
			}
			exts = append(exts, norm)
			if _, taken := t.owners[norm]; !taken {
				t.owners[norm] = name
			}
		}

		if name == fallback && len(exts) > 0 {
			return nil, errors.Errorf("fallback category %q must not list extensions", name)
		}

		t.categories = append(t.categories, Category{Name: name, Extensions: exts})
	}

	if !seen[fallback] {
		t.categories = append(t.categories, Category{Name: fallback})
	}

	return t, nil
}

// 🎯 Default returns the built-in six category table
func Default() *Table {
	t, err := New(Others,
		Category{Name: Documents, Extensions: []string{".pdf", ".docx", ".txt"}},
		Category{Name: Images, Extensions: []string{".jpg", ".jpeg", ".png", ".gif"}},
		Category{Name: Videos, Extensions: []string{".mp4", ".avi", ".mkv"}},
		Category{Name: Audio, Extensions: []string{".mp3", ".wav", ".aac"}},
		Category{Name: Archives, Extensions: []string{".zip", ".rar", ".tar", ".gz"}},
		Category{Name: Others},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// 🔍 Classify returns the first category, in table order, whose extension set
// contains ext. Unknown and empty extensions map to the fallback.
func (t *Table) Classify(ext string) string {
	if owner, ok := t.owners[strings.ToLower(ext)]; ok {
		return owner
	}
	return t.fallback
}

// Fallback returns the name of the fallback category
func (t *Table) Fallback() string {
	return t.fallback
}

// 📋 Names returns every category name in table order, fallback included
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return names
}

// Categories returns a copy of the table rows in order
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}

// IsCategory reports whether name is exactly one of the table's category names
func (t *Table) IsCategory(name string) bool {
	for _, c := range t.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// 🔀 Overlaps lists extensions claimed by more than one category
func (t *Table) Overlaps() []Overlap {
	var out []Overlap
	index := make(map[string]int)
	for _, c := range t.categories {
		for _, ext := range c.Extensions {
			owner := t.owners[ext]
			if owner == c.Name {
				continue
			}
			i, ok := index[ext]
			if !ok {
				out = append(out, Overlap{Extension: ext, Winner: owner})
				i = len(out) - 1
				index[ext] = i
			}
			out[i].Shadowed = append(out[i].Shadowed, c.Name)
		}
	}
	return out
}

// NormalizeExtension lowercases ext and ensures a single leading dot.
// Blank input stays blank.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	return "." + strings.TrimLeft(ext, ".")
}

// 📎 Extension returns the lowercase suffix of a file name starting at its last
// dot. Leading dots belong to the name, so ".bashrc" has no extension and
// "archive.tar.gz" has ".gz".
func Extension(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(base[idx:])
}
