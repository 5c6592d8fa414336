package apiclient

import (
	"context"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

// API is the client view of the two proxy endpoints.
type API interface {
	Transcribe(ctx context.Context, path string, opts models.TranscriptionOptions) (models.Transcript, error)
	Summarize(ctx context.Context, transcript string, opts models.SummaryOptions) (string, error)
}
