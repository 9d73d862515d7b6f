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


package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/svgscribe/core"
	"github.com/poiesic/svgscribe/storage"
)

// Store persists the results mapping as one pretty-printed JSON file with
// top-level shape {category: {id: description}}. Non-ASCII text is written
// verbatim.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by the file at path. The file need not
// exist yet; Load on a missing file yields an empty mapping.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: slog.Default().With("component", "jsonfile-store"),
	}
}

// Path returns the location of the results file.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the results file.
func (s *Store) Load(ctx context.Context) (core.Results, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no existing results file, starting empty", "path", s.path)
		return core.Results{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var results core.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrInvalidResults, s.path, err)
	}
	if results == nil {
		results = core.Results{}
	}

	s.logger.Debug("loaded results", "path", s.path, "records", results.Count())
	return results, nil
}

// Save writes the full mapping. The file is written to a temporary sibling
// and renamed into place so a crash mid-write never truncates prior results.
func (s *Store) Save(ctx context.Context, results core.Results) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp results file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		tmp.Close()
		return fmt.Errorf("encode results: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp results file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace results file: %w", err)
	}

	s.logger.Debug("saved results", "path", s.path, "records", results.Count())
	return nil
}
