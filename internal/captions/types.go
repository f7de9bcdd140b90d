// Package captions holds the types shared by the caption-extraction pipeline:
// cues, fetch results, the error taxonomy and timestamp normalization.
package captions

// Cue is one timed subtitle entry.
type Cue struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

// FetchResult describes what the downloader produced for one request.
type FetchResult struct {
	// AvailableLanguages lists every automatic-caption language, sorted.
	AvailableLanguages []string
	// SelectedLanguage is empty when nothing was downloaded.
	SelectedLanguage string
	// FilePath is where the downloader reported writing the track, if anywhere.
	FilePath string

	// WorkDir and BaseName reproduce the downloader's naming pattern:
	// <WorkDir>/<BaseName>.<lang>.<Ext>.
	WorkDir  string
	BaseName string
	Ext      string
}

// HasLanguage reports whether lang is among the available languages.
func (r FetchResult) HasLanguage(lang string) bool {
	for _, l := range r.AvailableLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// LocatorResult is the relocated caption file for the selected track.
type LocatorResult struct {
	Language string
	FilePath string
}
