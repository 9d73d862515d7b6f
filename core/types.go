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


package core

// Description is the structured description produced for one asset variant.
// Field names and JSON tags match the object the generation service is
// instructed to emit. Fields beyond Id and Category may be empty when the
// service returns a partial record; consumers must tolerate that.
type Description struct {
	Id          string   `json:"id"`
	Category    string   `json:"category"`
	ShortLabel  string   `json:"short_label"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Results is the full cache of descriptions, keyed by category then asset id.
// It is the unit of persistence: loaded once at the start of a run, grown in
// memory, and written back in full.
type Results map[string]map[string]*Description

// Has reports whether a description exists for the (category, id) pair.
func (r Results) Has(category, id string) bool {
	byID, ok := r[category]
	if !ok {
		return false
	}
	_, ok = byID[id]
	return ok
}

// Add stores a description under (category, id), creating the category map
// if needed. An existing entry for the pair is replaced.
func (r Results) Add(category, id string, desc *Description) {
	byID, ok := r[category]
	if !ok {
		byID = make(map[string]*Description)
		r[category] = byID
	}
	byID[id] = desc
}

// Count returns the total number of stored descriptions across all categories.
func (r Results) Count() int {
	n := 0
	for _, byID := range r {
		n += len(byID)
	}
	return n
}

// Missing returns the number of (category, id) pairs from the given asset
// listing that do not yet have a stored description.
func (r Results) Missing(assets map[string][]string) int {
	n := 0
	for category, ids := range assets {
		for _, id := range ids {
			if !r.Has(category, id) {
				n++
			}
		}
	}
	return n
}
