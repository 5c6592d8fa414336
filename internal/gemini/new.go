package gemini

import (
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
)

type implProvider struct {
	apiKey func() string
	model  string
	logger logger.Logger
}

// New creates a Provider for model. apiKey is called on every Open.
func New(apiKey func() string, model string, log logger.Logger) Provider {
	return &implProvider{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}
