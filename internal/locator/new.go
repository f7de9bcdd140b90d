package locator

import (
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

type implLocator struct {
	tempDir   string
	preferred []string
	logger    logger.Logger
}

// New creates a Locator that relocates selected tracks into tempDir.
// preferred is the ordered language preference list, e.g. ["en"].
func New(tempDir string, preferred []string, log logger.Logger) Locator {
	return &implLocator{
		tempDir:   tempDir,
		preferred: preferred,
		logger:    log,
	}
}
