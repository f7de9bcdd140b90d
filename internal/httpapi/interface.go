package httpapi

import (
	"context"
	"net/http"
)

// Server serves the caption HTTP API.
type Server interface {
	Handler() http.Handler
	// Run listens until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error
}
