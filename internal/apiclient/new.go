package apiclient

import (
	"strings"

	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
)

type implClient struct {
	baseURL string
	logger  logger.Logger
}

// New creates an API client for the proxy server at baseURL.
func New(baseURL string, log logger.Logger) API {
	return &implClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
	}
}
