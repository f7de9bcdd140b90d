package scratch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

const lockName = ".autocaptions.lock"

// ErrLocked means another process holds the scratch root.
var ErrLocked = errors.New("scratch root is locked by another process")

type implScratch struct {
	root   string
	lock   *flock.Flock
	logger logger.Logger
}

// Options controls how the scratch root is opened.
type Options struct {
	// Exclusive takes a lock on the root so only one server purges and uses it.
	Exclusive bool
}

// New opens the scratch root, creating it if needed.
func New(root string, opts Options, log logger.Logger) (Scratch, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create scratch root: %w", err)
	}

	s := &implScratch{root: root, logger: log}
	if !opts.Exclusive {
		return s, nil
	}

	lock := flock.New(filepath.Join(root, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scratch lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", root, ErrLocked)
	}
	s.lock = lock
	return s, nil
}
