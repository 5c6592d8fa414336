package transcription

import (
	"context"

	"github.com/nguyentantai21042004/ai-transcriber/internal/models"
)

// Request is the body accepted by the transcription endpoint.
type Request struct {
	FileData string                       `json:"fileData"`
	MimeType string                       `json:"mimeType"`
	Options  *models.TranscriptionOptions `json:"options"`
}

// Transcriber turns an inlined media file into a Transcript using the hosted model.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (models.Transcript, error)
}
