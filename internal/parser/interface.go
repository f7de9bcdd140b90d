package parser

import (
	"context"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

// Parser reads a WebVTT caption file into cues in file order.
type Parser interface {
	Parse(ctx context.Context, path string) ([]captions.Cue, error)
}
