// Package openai implements the ai.Describer and ai.Generator interfaces
// against OpenAI-compatible chat APIs (OpenAI, Ollama, LocalAI, vLLM, ...).
//
// The describer sends a fixed instruction template plus the concrete
// (category, id) pair, then parses the model's free-form text output as a
// single JSON object. Markdown fences are stripped and common JSON damage
// repaired before parsing; anything still unparseable is surfaced as an
// ai.DescribeError carrying the raw text.
package openai
