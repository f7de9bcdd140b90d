package processor

import (
	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/fetcher"
	"github.com/nguyentantai21042004/autocaptions/internal/locator"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
	"github.com/nguyentantai21042004/autocaptions/internal/parser"
	"github.com/nguyentantai21042004/autocaptions/internal/scratch"
)

type implProcessor struct {
	fetcher fetcher.Fetcher
	locator locator.Locator
	parser  parser.Parser
	scratch scratch.Scratch
	sem     *semaphore
	logger  logger.Logger
}

// Deps are the pipeline stages a Processor drives.
type Deps struct {
	Fetcher fetcher.Fetcher
	Locator locator.Locator
	Parser  parser.Parser
	Scratch scratch.Scratch
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		fetcher: deps.Fetcher,
		locator: deps.Locator,
		parser:  deps.Parser,
		scratch: deps.Scratch,
		sem:     newSemaphore(cfg.Performance.MaxConcurrent),
		logger:  log,
	}
}
