package processor

import (
	"github.com/nguyentantai21042004/ai-transcriber/internal/apiclient"
	"github.com/nguyentantai21042004/ai-transcriber/internal/config"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	api      apiclient.API
	executor executor.Executor
	logger   logger.Logger
	archive  bool
}

// New creates a new Processor instance. When archive is set the source file
// is moved to the archived folder after a successful run.
func New(cfg *config.Config, api apiclient.API, exec executor.Executor, log logger.Logger, archive bool) Processor {
	return &implProcessor{
		cfg:      cfg,
		api:      api,
		executor: exec,
		logger:   log,
		archive:  archive,
	}
}
