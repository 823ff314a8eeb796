// Package ai is the boundary to the local text-generation service. The
// rest of the backend depends only on the Generator interface; nothing
// about clock, roster or conversations may break when generation is
// unavailable.
package ai

import "context"

// GenerateRequest carries one generation call.
type GenerateRequest struct {
	Prompt       string
	SystemPrompt string  // optional
	Temperature  float32 // 0 means provider default
	MaxTokens    int     // 0 means provider default
}

// Generator produces text from a prompt. Implementations must honor
// context cancellation; callers bound every call with a deadline.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
