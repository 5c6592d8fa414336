package summarizer

import (
	"github.com/nguyentantai21042004/ai-transcriber/internal/gemini"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
)

const defaultTemperature float32 = 0.2

type implSummarizer struct {
	provider    gemini.Provider
	logger      logger.Logger
	temperature float32
}

// New creates a Summarizer. A zero temperature falls back to 0.2.
func New(provider gemini.Provider, temperature float32, log logger.Logger) Summarizer {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &implSummarizer{
		provider:    provider,
		logger:      log,
		temperature: temperature,
	}
}
