package locator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
)

// SelectTrack chooses the caption language and relocates its file into a
// freshly created temp file. The caller owns the returned file.
func (l *implLocator) SelectTrack(ctx context.Context, result captions.FetchResult) (captions.LocatorResult, error) {
	lang := SelectLanguage(result.AvailableLanguages, l.preferred)
	if lang == "" {
		return captions.LocatorResult{}, captions.E(captions.KindNoCaptionsAvailable, "select track", captions.ErrNoCaptionsAvailable)
	}
	if result.SelectedLanguage != "" && result.SelectedLanguage != lang {
		l.logger.Warn(ctx, "Downloader fetched %q but selection picked %q", result.SelectedLanguage, lang)
	}

	src, err := resolvePath(result, lang)
	if err != nil {
		return captions.LocatorResult{}, captions.E(captions.KindFileNotFound, "select track", err)
	}

	dst, err := l.relocate(ctx, src)
	if err != nil {
		return captions.LocatorResult{}, captions.E(captions.KindFileNotFound, "relocate track", err)
	}

	l.logger.Debug(ctx, "Selected %q track from %v: %s", lang, result.AvailableLanguages, dst)
	return captions.LocatorResult{Language: lang, FilePath: dst}, nil
}

// resolvePath builds <WorkDir>/<BaseName>.<lang>.<Ext> and falls back to the
// path the downloader reported when the pattern does not exist.
func resolvePath(result captions.FetchResult, lang string) (string, error) {
	ext := result.Ext
	if ext == "" {
		ext = "vtt"
	}
	expected := filepath.Join(result.WorkDir, fmt.Sprintf("%s.%s.%s", result.BaseName, lang, ext))
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}
	if result.FilePath != "" && result.SelectedLanguage == lang {
		if _, err := os.Stat(result.FilePath); err == nil {
			return result.FilePath, nil
		}
	}
	return "", fmt.Errorf("caption file %s: %w", expected, os.ErrNotExist)
}

func (l *implLocator) relocate(ctx context.Context, src string) (string, error) {
	if err := os.MkdirAll(l.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	prefix := "captions"
	if id := logger.RequestID(ctx); id != "" {
		prefix = "req-" + id
	}

	tmp, err := os.CreateTemp(l.tempDir, prefix+"-*"+filepath.Ext(src))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	dst := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(src, dst); err != nil {
		// Rename fails across filesystems; copy instead.
		l.logger.Debug(ctx, "Rename %s failed, copying: %v", src, err)
		if err := copyFile(src, dst); err != nil {
			os.Remove(dst)
			return "", fmt.Errorf("move caption file: %w", err)
		}
		if err := os.Remove(src); err != nil && !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn(ctx, "Failed to remove %s after copy: %v", src, err)
		}
	}

	return dst, nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}
