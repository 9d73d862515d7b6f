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


package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/svgscribe/ai"
	"github.com/poiesic/svgscribe/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// ErrNoChoices indicates the generation service returned an empty response.
var ErrNoChoices = errors.New("no choices returned from model")

// Describer implements ai.Describer and ai.Generator using OpenAI-compatible
// chat APIs. One instance serves any number of sequential Describe calls.
type Describer struct {
	client llms.Model
	logger *slog.Logger
}

// newDescriber is an internal constructor that returns the concrete type.
func newDescriber(config *ai.Config) (*Describer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Describer{
		client: client,
		logger: slog.Default().With("component", "openai-describer"),
	}, nil
}

// NewDescriber creates a describer for the configured service.
//
// Returns ai.Describer interface to enforce abstraction.
func NewDescriber(config *ai.Config) (ai.Describer, error) {
	return newDescriber(config)
}

// GenerateText sends one instruction prompt to the service and returns its
// raw text output. Implements ai.Generator. A single attempt is made; any
// retry policy belongs to the caller.
func (d *Describer) GenerateText(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := d.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		d.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", ErrNoChoices
	}

	return response.Choices[0].Content, nil
}

// Describe asks the service for a description of one (category, id) pair and
// parses the response as a single JSON object. The record is accepted as long
// as it parses; missing or partial fields are not rejected.
func (d *Describer) Describe(ctx context.Context, category, id string) (*core.Description, error) {
	text, err := d.GenerateText(ctx, buildPrompt(category, id))
	if err != nil {
		return nil, &ai.DescribeError{Category: category, Id: id, Err: err}
	}

	desc, err := parseDescription(category, id, text)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("described variant", "category", category, "id", id, "label", desc.ShortLabel)
	return desc, nil
}

// parseDescription parses the service's free-form text output into a
// Description. Markdown code fences are stripped and common JSON damage is
// repaired before unmarshaling. On failure the returned *ai.DescribeError
// carries the unmodified text.
func parseDescription(category, id, text string) (*core.Description, error) {
	cleaned := stripFences(text)
	cleaned = repairJSON(cleaned)

	var desc core.Description
	if err := json.Unmarshal([]byte(cleaned), &desc); err != nil {
		return nil, &ai.DescribeError{Category: category, Id: id, Raw: text, Err: err}
	}
	return &desc, nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
