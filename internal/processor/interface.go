package processor

import (
	"context"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

// Processor runs the caption pipeline for one video URL.
type Processor interface {
	Process(ctx context.Context, videoURL string) ([]captions.Cue, error)
}
