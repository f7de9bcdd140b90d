package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

const defaultSettle = 200 * time.Millisecond

// New watches filePath. The parent directory is watched rather than the file
// itself so that editors replacing the file by rename are still seen.
func New(filePath string, handler EventHandler, log logger.Logger) (Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		filePath: abs,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   defaultSettle,
	}, nil
}
