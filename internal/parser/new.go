package parser

import (
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

type implParser struct {
	logger logger.Logger
}

// New creates a Parser.
func New(log logger.Logger) Parser {
	return &implParser{logger: log}
}
