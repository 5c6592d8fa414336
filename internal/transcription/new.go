package transcription

import (
	"github.com/nguyentantai21042004/ai-transcriber/internal/gemini"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
)

type implTranscriber struct {
	provider gemini.Provider
	logger   logger.Logger
}

// New creates a Transcriber backed by provider.
func New(provider gemini.Provider, log logger.Logger) Transcriber {
	return &implTranscriber{
		provider: provider,
		logger:   log,
	}
}
