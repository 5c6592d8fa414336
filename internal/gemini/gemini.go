package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model replies without any text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

type implGenerator struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// Open creates a Gemini API client with the credential currently in the environment.
func (p *implProvider) Open(ctx context.Context) (Generator, error) {
	key := p.apiKey()
	if key == "" {
		return nil, models.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGenerator{
		client: client,
		model:  p.model,
		logger: p.logger,
	}, nil
}

// Generate sends parts as a single user turn and concatenates the text of the first candidate.
func (g *implGenerator) Generate(ctx context.Context, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	g.logger.Debug(ctx, "Calling %s with %d parts", g.model, len(parts))

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := ResponseText(result)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// ResponseText joins the non-thought text parts of the first candidate.
func ResponseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
