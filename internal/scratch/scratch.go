package scratch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

// Prefix starts the name of every per-request entry in the scratch root.
const Prefix = "req-"

// Workspace is one request's private directory.
type Workspace struct {
	ID  string
	Dir string

	root   string
	logger logger.Logger
}

func (s *implScratch) Root() string {
	return s.root
}

func (s *implScratch) Acquire(ctx context.Context, id string) (*Workspace, error) {
	if id == "" {
		id = uuid.NewString()
	}
	dir := filepath.Join(s.root, Prefix+id)
	// Mkdir, not MkdirAll: an existing directory means the ID was reused.
	if err := os.Mkdir(dir, 0755); err != nil {
		return nil, fmt.Errorf("create request dir: %w", err)
	}
	s.logger.Debug(ctx, "Acquired scratch dir %s", dir)
	return &Workspace{ID: id, Dir: dir, root: s.root, logger: s.logger}, nil
}

// Release removes the request directory and any file relocated next to it
// under the same request prefix.
func (w *Workspace) Release(ctx context.Context) {
	if err := os.RemoveAll(w.Dir); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup scratch dir %s: %v", w.Dir, err)
	}

	matches, err := filepath.Glob(filepath.Join(w.root, Prefix+w.ID+"-*"))
	if err != nil {
		w.logger.Warn(ctx, "Failed to list relocated files for %s: %v", w.ID, err)
		return
	}
	for _, path := range matches {
		w.cleanupTempFile(ctx, path)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (w *Workspace) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		w.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

func (s *implScratch) Purge(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, fmt.Errorf("read scratch root: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), Prefix) {
			continue
		}
		path := filepath.Join(s.root, e.Name())
		if err := os.RemoveAll(path); err != nil {
			s.logger.Warn(ctx, "Failed to purge %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info(ctx, "Purged %d stale scratch entries from %s", removed, s.root)
	}
	return removed, nil
}

func (s *implScratch) Close() error {
	if s.lock == nil {
		return nil
	}
	return s.lock.Unlock()
}
