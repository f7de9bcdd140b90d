package fetcher

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// videoInfo is the subset of yt-dlp's info JSON the fetcher reads.
type videoInfo struct {
	ID                 string                       `json:"id"`
	Title              string                       `json:"title"`
	AutomaticCaptions  map[string][]captionFormat   `json:"automatic_captions"`
	RequestedSubtitles map[string]requestedSubtitle `json:"requested_subtitles"`
}

type captionFormat struct {
	Ext  string `json:"ext"`
	Name string `json:"name"`
}

type requestedSubtitle struct {
	Ext      string `json:"ext"`
	Filepath string `json:"filepath"`
}

func decodeInfo(out string) (*videoInfo, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, fmt.Errorf("empty info json")
	}
	// yt-dlp prints one JSON document; anything before it is stray output.
	if i := strings.IndexByte(out, '{'); i > 0 {
		out = out[i:]
	}
	var info videoInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("decode info json: %w", err)
	}
	return &info, nil
}

// languages returns the automatic-caption languages that offer at least one format, sorted.
func (v *videoInfo) languages() []string {
	langs := make([]string, 0, len(v.AutomaticCaptions))
	for lang, formats := range v.AutomaticCaptions {
		if lang == "" || len(formats) == 0 {
			continue
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
