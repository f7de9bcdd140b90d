package fetcher

import (
	"time"

	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
	"github.com/nguyentantai21042004/autocaptions/pkg/executor"
)

type implFetcher struct {
	binary    string
	timeout   time.Duration
	base      string
	extraArgs []string
	preferred []string
	executor  executor.Executor
	logger    logger.Logger
}

// New creates a Fetcher that drives the configured yt-dlp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		binary:    cfg.Downloader.BinaryPath,
		timeout:   cfg.Downloader.Timeout,
		base:      cfg.Downloader.OutputBase,
		extraArgs: cfg.Downloader.ExtraArgs,
		preferred: cfg.Tracks.PreferredLanguages,
		executor:  exec,
		logger:    log,
	}
}
