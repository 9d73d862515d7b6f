package openai

import "fmt"

const basePrompt = `You are helping document SVG parts for an avatar library.

Each SVG belongs to a category (like 'head', 'nose', 'mouth', 'hair', 'glasses')
and has an internal ID (like 'head3', 'nose5', 'juice', 'glasses2-black').

For each (category, id) pair, you must produce a SHORT, agent-friendly description
that makes it easy for an AI system to reason about what this variant looks like
and when it should be used.

Constraints and behaviour:
- You DO NOT see the actual SVG image. You only see the category and id.
- Infer meaning from patterns in the id when possible (for example: 'nose9' vs 'nose1',
  'head_round', 'juice', 'glasses2-black').
- When it's ambiguous, make a reasonable, generic guess.
- Focus on visual aspects: shape, size, style, emotion/attitude if relevant.
- Output must be STRICT, VALID JSON. No comments. No trailing commas. No extra text.

Your output MUST be exactly one JSON object with this structure (field names and types):
{
  "id": string,               // the original svg id (exactly as given)
  "category": string,         // the original category (exactly as given)
  "short_label": string,      // very short human-readable label (max ~5 words)
  "description": string,      // 1-3 sentences describing the visual style
  "tags": string[]            // 3-8 semantic tags, e.g. ["long", "round", "serious"]
}

Return ONLY the JSON object, nothing else.`

// buildPrompt appends the concrete (category, id) pair to the fixed
// instruction template.
func buildPrompt(category, id string) string {
	return fmt.Sprintf("%s\n\nNow describe this variant:\ncategory: %q\nid: %q", basePrompt, category, id)
}
