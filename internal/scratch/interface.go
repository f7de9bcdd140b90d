package scratch

import "context"

// Scratch hands out per-request working directories under one root.
type Scratch interface {
	// Acquire creates the directory for request id. An empty id gets a fresh UUID.
	Acquire(ctx context.Context, id string) (*Workspace, error)
	// Purge removes request entries left behind by an earlier process.
	Purge(ctx context.Context) (int, error)
	// Root is the scratch root directory.
	Root() string
	// Close releases the root lock, if held.
	Close() error
}
