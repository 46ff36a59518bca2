// Package service provides the language model client, the forensic prompt
// and the parser that splits model answers into sections.
package service

import "context"

// LLMClient generates text for a prompt with a caller-supplied API key.
type LLMClient interface {
	// Generate returns the text of the model's first candidate. Every failure
	// is reported as ErrLLMRequestFailed.
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}
