// Copyright 2025 Poiesic Systems
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


package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension is the asset file extension scanned for by default.
const DefaultExtension = ".svg"

// excludedDirs are subdirectory names that are never treated as categories,
// on top of the hidden-entry (dot prefix) rule.
var excludedDirs = map[string]struct{}{
	"__pycache__":  {},
	"node_modules": {},
}

// Scanner discovers asset ids grouped by category under a root directory.
// Each immediate subdirectory of the root is a category; each file in it
// with the target extension contributes its stem as an asset id.
type Scanner struct {
	ext    string
	logger *slog.Logger
}

// ScanOption is a functional option for configuring a Scanner.
type ScanOption func(*Scanner)

// WithExtension sets the asset file extension to scan for.
// A missing leading dot is added automatically.
func WithExtension(ext string) ScanOption {
	return func(s *Scanner) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// NewScanner creates a scanner for the default extension, applying any options.
func NewScanner(opts ...ScanOption) *Scanner {
	s := &Scanner{
		ext:    DefaultExtension,
		logger: slog.Default().With("component", "catalog-scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the root one level deep and returns a mapping from category
// name to lexicographically sorted asset ids. Categories with no matching
// files are omitted. An unreadable or empty root yields an empty mapping;
// the caller decides whether that is fatal.
func (s *Scanner) Scan(root string) map[string][]string {
	assets := make(map[string][]string)

	entries, err := os.ReadDir(root)
	if err != nil {
		s.logger.Debug("unable to read asset root", "root", root, "err", err)
		return assets
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, excluded := excludedDirs[name]; excluded {
			continue
		}

		ids := s.scanCategory(filepath.Join(root, name))
		if len(ids) == 0 {
			continue
		}
		sort.Strings(ids)
		assets[name] = ids
	}

	return assets
}

// scanCategory collects the stems of all matching files in one category
// directory. Nested directories are not descended into.
func (s *Scanner) scanCategory(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("unable to read category directory", "dir", dir, "err", err)
		return nil
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != s.ext {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, s.ext))
	}
	return ids
}

// Categories returns the category names of an asset mapping in sorted order,
// giving callers a deterministic iteration order.
func Categories(assets map[string][]string) []string {
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
