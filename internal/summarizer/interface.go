package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

// Request is the body accepted by the summary endpoint.
type Request struct {
	Transcript string                 `json:"transcript"`
	Options    *models.SummaryOptions `json:"options"`
}

// Summarizer produces a free-text summary of a transcript with the hosted model.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
