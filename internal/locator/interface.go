package locator

import (
	"context"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

// Locator picks a caption track from a fetch result and moves its file
// out of the downloader's working directory.
type Locator interface {
	SelectTrack(ctx context.Context, result captions.FetchResult) (captions.LocatorResult, error)
}
