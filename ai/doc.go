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


// Package ai provides abstractions for the generation service used by
// svgscribe.
//
// The package defines two interfaces. Generator is the narrow capability
// boundary ("generate text from one instruction"); Describer builds on it
// to produce a structured core.Description for a (category, id) pair. The
// pipeline depends only on these abstractions, never on a concrete provider.
//
// # Implementation Packages
//
//   - ai/openai: production implementation against OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert on call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithModel("gpt-4o-mini"))
//	describer, err := openai.NewDescriber(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	desc, err := describer.Describe(ctx, "nose", "nose5")
package ai
