package llm

import "context"

// Provider is one round trip to the hosted generative model: prompt in,
// free text out. No retries, no streaming.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
