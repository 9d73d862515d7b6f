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


package ai

import (
	"context"

	"github.com/poiesic/svgscribe/core"
)

// Generator produces free-form text from a single instruction prompt.
// This is the narrow boundary to the remote generation service; everything
// above it is provider-agnostic.
type Generator interface {
	// GenerateText sends one instruction to the generation service and
	// returns its raw text output. A single attempt is made per call;
	// retry policy, if any, belongs to the caller.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Describer produces a structured description for one (category, id) pair.
// Implementations must be safe for sequential reuse across many pairs.
type Describer interface {
	// Describe asks the generation service for a description of the asset
	// identified by category and id. The service never sees the asset's
	// visual content; it reasons from the two strings alone.
	//
	// Failures caused by unparseable service output are reported as a
	// *DescribeError carrying the raw text for diagnosis.
	Describe(ctx context.Context, category, id string) (*core.Description, error)
}
