package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/asticode/go-astisub"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
)

var (
	blockSep  = regexp.MustCompile(`\n{2,}`)
	inlineTag = regexp.MustCompile(`<[^>]*>`)
)

const webvttHeader = "WEBVTT"

// Parse reads the file at path. An empty or cue-less file yields an empty
// slice; a missing file yields an error wrapping fs.ErrNotExist.
func (p *implParser) Parse(ctx context.Context, path string) ([]captions.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, captions.E(captions.KindFileNotFound, "parse captions", err)
		}
		return nil, captions.E(captions.KindParseFailed, "parse captions", err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if len(bytes.TrimSpace(data)) == 0 {
		return []captions.Cue{}, nil
	}

	content := prepare(string(data))
	subs, err := astisub.ReadFromWebVTT(strings.NewReader(content))
	if err == nil {
		return toCues(subs), nil
	}

	p.logger.Warn(ctx, "Strict WebVTT parse of %s failed, parsing cue by cue: %v", path, err)
	return p.parseBlocks(ctx, content), nil
}

// prepare cleans cue payloads before they reach astisub. Whitespace-only
// lines inside a cue are dropped (YouTube auto captions put one right after
// the timing line, which would otherwise end the cue), whitespace-only lines
// between cues become empty separators, and inline tags are removed from
// text lines so words split by a tag stay whole.
func prepare(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inCue := false
	for _, line := range lines {
		switch {
		case strings.Contains(line, "-->"):
			inCue = true
		case strings.TrimSpace(line) == "":
			if inCue && line != "" {
				continue
			}
			inCue = false
			line = ""
		case inCue:
			line = inlineTag.ReplaceAllString(line, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// parseBlocks parses every blank-line separated block that carries a timing
// line on its own, skipping the ones that do not parse.
func (p *implParser) parseBlocks(ctx context.Context, content string) []captions.Cue {
	cues := []captions.Cue{}
	skipped := 0

	for i, block := range blockSep.Split(content, -1) {
		block = strings.TrimSpace(block)
		if !strings.Contains(block, "-->") {
			continue
		}
		if strings.HasPrefix(block, webvttHeader) {
			// Header glued to the first cue; keep what follows it.
			if j := strings.IndexByte(block, '\n'); j >= 0 {
				block = block[j+1:]
			}
		}

		subs, err := astisub.ReadFromWebVTT(strings.NewReader(webvttHeader + "\n\n" + block + "\n"))
		if err != nil {
			skipped++
			p.logger.Warn(ctx, "Skipping malformed cue #%d: %v", i, err)
			continue
		}
		cues = append(cues, toCues(subs)...)
	}

	if skipped > 0 {
		p.logger.Warn(ctx, "Skipped %d malformed cues, kept %d", skipped, len(cues))
	}
	return cues
}

func toCues(subs *astisub.Subtitles) []captions.Cue {
	cues := make([]captions.Cue, 0, len(subs.Items))
	for _, item := range subs.Items {
		cues = append(cues, captions.Cue{
			Start: formatTimestamp(item.StartAt),
			End:   formatTimestamp(item.EndAt),
			Text:  itemText(item),
		})
	}
	return cues
}

func itemText(item *astisub.Item) string {
	lines := make([]string, 0, len(item.Lines))
	for _, line := range item.Lines {
		parts := make([]string, 0, len(line.Items))
		for _, li := range line.Items {
			parts = append(parts, li.Text)
		}
		// Tags are stripped in prepare; this catches any astisub kept as text.
		text := inlineTag.ReplaceAllString(strings.Join(parts, " "), "")
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// formatTimestamp renders d as hh:mm:ss.mmm.
func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", int64(h), int64(m), int64(s), int64(ms))
}
