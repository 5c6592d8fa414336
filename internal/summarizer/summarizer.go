package summarizer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
	"google.golang.org/genai"
)

// Summarize sends the prompt and the framed transcript to the model and
// returns its reply verbatim.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	if req.Transcript == "" || req.Options == nil {
		return "", models.ErrMissingParameters
	}

	gen, err := s.provider.Open(ctx)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summarizing %d chars (key_points=%t, task_list=%t, preserve_language=%t)",
		len(req.Transcript), req.Options.KeyPoints, req.Options.TaskList, req.Options.PreserveLanguage)
	if !req.Options.HasSection() {
		s.logger.Debug(ctx, "No section requested, defaulting to key points")
	}

	startTime := time.Now()
	parts := []*genai.Part{
		genai.NewPartFromText(BuildPrompt(*req.Options)),
		genai.NewPartFromText(frameTranscript(req.Transcript)),
	}

	summary, err := gen.Generate(ctx, parts, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.temperature),
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summary completed: %d chars in %s", len(summary), time.Since(startTime))
	return summary, nil
}
