package main

import (
	"path/filepath"

	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/fetcher"
	"github.com/nguyentantai21042004/autocaptions/internal/locator"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
	"github.com/nguyentantai21042004/autocaptions/internal/parser"
	"github.com/nguyentantai21042004/autocaptions/internal/processor"
	"github.com/nguyentantai21042004/autocaptions/internal/scratch"
	"github.com/nguyentantai21042004/autocaptions/pkg/executor"
)

// newProcessor wires the caption pipeline around an open scratch root.
func newProcessor(cfg *config.Config, exec executor.Executor, s scratch.Scratch, log logger.Logger) processor.Processor {
	return processor.New(cfg, processor.Deps{
		Fetcher: fetcher.New(cfg, exec, log),
		Locator: locator.New(s.Root(), cfg.Tracks.PreferredLanguages, log),
		Parser:  parser.New(log),
		Scratch: s,
	}, log)
}

// fetchScratchDir is where one-shot CLI fetches keep their request entries.
// It sits outside the server's purge, which only touches req-* entries in
// the root, so a server starting mid-fetch cannot remove them.
const fetchScratchDir = "cli"

func fetchScratchRoot(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.Temp, fetchScratchDir)
}
