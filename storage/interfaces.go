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


package storage

import (
	"context"

	"github.com/poiesic/svgscribe/core"
)

// ResultsStore persists the full results mapping between runs.
type ResultsStore interface {
	// Load reads the persisted mapping. A store that has never been
	// written yields an empty mapping, not an error. A store whose
	// contents cannot be parsed returns an error wrapping
	// ErrInvalidResults.
	Load(ctx context.Context) (core.Results, error)

	// Save writes the full mapping, replacing any previous contents.
	// The write is atomic: a crash mid-save leaves the previous contents
	// intact.
	Save(ctx context.Context, results core.Results) error

	// Path returns the location of the persisted data, for display and
	// logging.
	Path() string
}
