package testsupport

import (
	"context"
	"os"
	"strings"
	"sync"
)

// Downloader fakes yt-dlp behind executor.Executor. Probe calls return
// ProbeOut; download calls (those with --write-auto-subs) write VTT to the
// file named by the -o template and report it in requested_subtitles.
type Downloader struct {
	ProbeOut    string
	ProbeErr    error
	DownloadErr error
	VTT         string

	// Block makes every call wait for context cancellation.
	Block bool

	mu    sync.Mutex
	calls [][]string
}

func (d *Downloader) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return d.ExecuteInDir(ctx, "", name, args...)
}

func (d *Downloader) ExecuteInDir(ctx context.Context, _ string, name string, args ...string) (string, error) {
	d.mu.Lock()
	d.calls = append(d.calls, append([]string{name}, args...))
	d.mu.Unlock()

	if d.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}

	if !HasArg(args, "--write-auto-subs") {
		return d.ProbeOut, d.ProbeErr
	}
	if d.DownloadErr != nil {
		return "", d.DownloadErr
	}

	lang := ArgValue(args, "--sub-langs")
	path := strings.Replace(ArgValue(args, "-o"), "%(ext)s", lang+".vtt", 1)
	if err := os.WriteFile(path, []byte(d.VTT), 0644); err != nil {
		return "", err
	}
	return `{"id":"abc","requested_subtitles":{"` + lang + `":{"ext":"vtt","filepath":"` + path + `"}}}`, nil
}

// Calls returns every recorded invocation, binary name first.
func (d *Downloader) Calls() [][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([][]string(nil), d.calls...)
}

// HasArg reports whether want appears in args.
func HasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

// ArgValue returns the argument following flag, or "".
func ArgValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
