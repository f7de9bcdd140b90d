package fetcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
	"github.com/nguyentantai21042004/autocaptions/internal/locator"
)

// subFormat is the only track format the parser reads.
const subFormat = "vtt"

// Fetch probes the video for automatic captions, then downloads the one
// track the locator's selection rule would choose.
func (f *implFetcher) Fetch(ctx context.Context, videoURL, workDir string) (captions.FetchResult, error) {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return captions.FetchResult{}, captions.E(captions.KindInvalidRequest, "fetch", captions.ErrNoURL)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	result := captions.FetchResult{
		WorkDir:  workDir,
		BaseName: f.base,
		Ext:      subFormat,
	}

	f.logger.Info(ctx, "Probing automatic captions: %s", videoURL)
	info, err := f.probe(ctx, videoURL)
	if err != nil {
		return result, captions.E(captions.KindDownloadFailed, "probe captions", err)
	}

	result.AvailableLanguages = info.languages()
	if len(result.AvailableLanguages) == 0 {
		f.logger.Info(ctx, "No automatic captions for %s", videoURL)
		return result, nil
	}

	lang := locator.SelectLanguage(result.AvailableLanguages, f.preferred)
	f.logger.Info(ctx, "Downloading %q captions (%d available)", lang, len(result.AvailableLanguages))

	downloaded, err := f.download(ctx, videoURL, workDir, lang)
	if err != nil {
		return result, captions.E(captions.KindDownloadFailed, "download captions", err)
	}

	result.SelectedLanguage = lang
	if sub, ok := downloaded.RequestedSubtitles[lang]; ok && sub.Filepath != "" {
		result.FilePath = sub.Filepath
	} else {
		result.FilePath = filepath.Join(workDir, fmt.Sprintf("%s.%s.%s", f.base, lang, subFormat))
	}

	f.logger.Debug(ctx, "Downloader wrote %s", result.FilePath)
	return result, nil
}

func (f *implFetcher) probe(ctx context.Context, videoURL string) (*videoInfo, error) {
	args := []string{
		"--dump-single-json",
		"--skip-download",
		"--no-playlist",
		"--no-warnings",
	}
	args = append(args, f.extraArgs...)
	args = append(args, "--", videoURL)

	out, err := f.executor.Execute(ctx, f.binary, args...)
	if err != nil {
		return nil, timeoutAware(ctx, err)
	}
	return decodeInfo(out)
}

func (f *implFetcher) download(ctx context.Context, videoURL, workDir, lang string) (*videoInfo, error) {
	args := []string{
		"--dump-single-json",
		"--no-simulate",
		"--skip-download",
		"--no-playlist",
		"--no-warnings",
		"--write-auto-subs",
		"--sub-langs", regexp.QuoteMeta(lang),
		"--sub-format", subFormat,
		"-o", filepath.Join(workDir, f.base+".%(ext)s"),
	}
	args = append(args, f.extraArgs...)
	args = append(args, "--", videoURL)

	out, err := f.executor.ExecuteInDir(ctx, workDir, f.binary, args...)
	if err != nil {
		return nil, timeoutAware(ctx, err)
	}
	return decodeInfo(out)
}

func timeoutAware(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("downloader timed out: %w", err)
	}
	return err
}
