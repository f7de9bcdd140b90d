package processor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

// Process orchestrates the caption pipeline: fetch, locate, parse, normalize.
// Every scratch file it creates is removed before it returns.
func (p *implProcessor) Process(ctx context.Context, videoURL string) ([]captions.Cue, error) {
	startTime := time.Now()

	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return nil, captions.E(captions.KindInvalidRequest, "process", captions.ErrNoURL)
	}

	id := logger.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = logger.WithRequestID(ctx, id)
	}

	if err := p.sem.acquire(ctx); err != nil {
		return nil, captions.E(captions.KindInternal, "wait for download slot", err)
	}
	defer p.sem.release()

	ws, err := p.scratch.Acquire(ctx, id)
	if err != nil {
		return nil, captions.E(captions.KindInternal, "allocate scratch", err)
	}
	defer ws.Release(ctx)

	// Step 1: Download the automatic caption track
	result, err := p.fetcher.Fetch(ctx, videoURL, ws.Dir)
	if err != nil {
		return nil, err
	}

	// Step 2: Pick the track and move it out of the downloader's directory
	track, err := p.locator.SelectTrack(ctx, result)
	if err != nil {
		return nil, err
	}

	// Step 3: Parse cues
	cues, err := p.parser.Parse(ctx, track.FilePath)
	if err != nil {
		return nil, err
	}
	if len(cues) == 0 {
		return nil, captions.E(captions.KindNotFound, "process", captions.ErrEmptyCaptions)
	}

	// Step 4: Normalize timestamps
	captions.NormalizeCues(cues)

	p.logger.Info(ctx, "Extracted %d %q cues from %s in %s",
		len(cues), track.Language, videoURL, time.Since(startTime).Round(time.Millisecond))
	return cues, nil
}
