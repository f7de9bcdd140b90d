package fetcher

import (
	"context"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

// Fetcher downloads automatic caption tracks for a video without the media.
type Fetcher interface {
	// Fetch writes the selected track into workDir and reports every
	// available automatic-caption language.
	Fetch(ctx context.Context, videoURL, workDir string) (captions.FetchResult, error)
}
