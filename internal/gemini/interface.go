package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Provider opens a Generator for a single request.
// Open fails with models.ErrMissingAPIKey when the credential is not configured.
type Provider interface {
	Open(ctx context.Context) (Generator, error)
}

// Generator sends one generation request and returns the reply text.
type Generator interface {
	Generate(ctx context.Context, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error)
}
