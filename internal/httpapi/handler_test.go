package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/autocaptions/internal/captions"
	"github.com/nguyentantai21042004/autocaptions/internal/config"
	"github.com/nguyentantai21042004/autocaptions/internal/fetcher"
	"github.com/nguyentantai21042004/autocaptions/internal/locator"
	"github.com/nguyentantai21042004/autocaptions/internal/logger"
	"github.com/nguyentantai21042004/autocaptions/internal/parser"
	"github.com/nguyentantai21042004/autocaptions/internal/processor"
	"github.com/nguyentantai21042004/autocaptions/internal/scratch"
	"github.com/nguyentantai21042004/autocaptions/internal/testsupport"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeProcessor struct {
	cues  []captions.Cue
	err   error
	panic bool
	gotID string
}

func (f *fakeProcessor) Process(ctx context.Context, videoURL string) ([]captions.Cue, error) {
	f.gotID = logger.RequestID(ctx)
	if f.panic {
		panic("boom")
	}
	return f.cues, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Paths.Temp = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func do(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body map[string]interface{}
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
		}
	}
	return w, body
}

func TestGetCaptionsStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		proc       *fakeProcessor
		wantStatus int
		wantError  string
	}{
		{"missing url", "/api/getCaptions", &fakeProcessor{}, 400, "No URL provided"},
		{"blank url", "/api/getCaptions?url=%20", &fakeProcessor{}, 400, "No URL provided"},
		{"no captions", "/api/getCaptions?url=x", &fakeProcessor{err: captions.E(captions.KindNoCaptionsAvailable, "select", captions.ErrNoCaptionsAvailable)}, 404, "Captions not found"},
		{"download failed", "/api/getCaptions?url=x", &fakeProcessor{err: captions.E(captions.KindDownloadFailed, "fetch", errors.New("exit 1"))}, 404, "Captions not found"},
		{"file not found", "/api/getCaptions?url=x", &fakeProcessor{err: captions.E(captions.KindFileNotFound, "locate", os.ErrNotExist)}, 404, "Captions not found"},
		{"parse failed", "/api/getCaptions?url=x", &fakeProcessor{err: captions.E(captions.KindParseFailed, "parse", errors.New("bad"))}, 404, "Captions not found"},
		{"empty cues", "/api/getCaptions?url=x", &fakeProcessor{cues: []captions.Cue{}}, 404, "Captions not found"},
		{"unexpected error", "/api/getCaptions?url=x", &fakeProcessor{err: errors.New("disk full")}, 500, "Internal server error"},
		{"panic", "/api/getCaptions?url=x", &fakeProcessor{panic: true}, 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(testConfig(t), tt.proc, testsupport.NewLogger())
			w, body := do(t, srv.Handler(), tt.target)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", body["error"], tt.wantError)
			}
		})
	}
}

func TestGetCaptionsSuccess(t *testing.T) {
	proc := &fakeProcessor{cues: []captions.Cue{
		{Start: "00:00:01", End: "00:00:03", Text: "Hello"},
		{Start: "00:00:04", End: "00:00:05", Text: "World"},
	}}
	srv := New(testConfig(t), proc, testsupport.NewLogger())

	w, _ := do(t, srv.Handler(), "/api/getCaptions?url=https%3A%2F%2Fyoutu.be%2Fabc")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Captions []captions.Cue `json:"captions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Captions) != 2 || body.Captions[1].Text != "World" {
		t.Errorf("captions = %+v", body.Captions)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	proc := &fakeProcessor{cues: []captions.Cue{{Start: "00:01", End: "00:02", Text: "x"}}}
	srv := New(testConfig(t), proc, testsupport.NewLogger())

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/getCaptions?url=x", nil)
	req.Header.Set(requestIDHeader, given)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if proc.gotID != given || w.Header().Get(requestIDHeader) != given {
		t.Errorf("request id = %q / %q, want %q", proc.gotID, w.Header().Get(requestIDHeader), given)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/getCaptions?url=x", nil)
	req.Header.Set(requestIDHeader, "../../etc")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if _, err := uuid.Parse(proc.gotID); err != nil || proc.gotID == "../../etc" {
		t.Errorf("non-UUID request id should be replaced, got %q", proc.gotID)
	}
}

func TestStaticRoutes(t *testing.T) {
	srv := New(testConfig(t), &fakeProcessor{}, testsupport.NewLogger())

	for target, want := range map[string]string{"/": "Hello, World!", "/about": "About"} {
		w, _ := do(t, srv.Handler(), target)
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Errorf("GET %s = %d %q, want 200 %q", target, w.Code, w.Body.String(), want)
		}
	}
}

func TestHealth(t *testing.T) {
	cfg := testConfig(t)
	cfg.Downloader.BinaryPath = "/nonexistent/yt-dlp"
	srv := New(cfg, &fakeProcessor{}, testsupport.NewLogger())

	w, body := do(t, srv.Handler(), "/healthz")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if body["downloader"] != false || body["status"] != "degraded" {
		t.Errorf("body = %v", body)
	}
}

// newPipelineServer wires the real pipeline behind a fake yt-dlp.
func newPipelineServer(t *testing.T, dl *testsupport.Downloader) (Server, string) {
	t.Helper()
	cfg := testConfig(t)
	log := testsupport.NewLogger()

	s, err := scratch.New(cfg.Paths.Temp, scratch.Options{Exclusive: true}, log)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	proc := processor.New(cfg, processor.Deps{
		Fetcher: fetcher.New(cfg, dl, log),
		Locator: locator.New(cfg.Paths.Temp, cfg.Tracks.PreferredLanguages, log),
		Parser:  parser.New(log),
		Scratch: s,
	}, log)
	return New(cfg, proc, log), cfg.Paths.Temp
}

func TestEndToEndEnglishCaptions(t *testing.T) {
	dl := &testsupport.Downloader{
		ProbeOut: `{"id":"abc","automatic_captions":{"de":[{"ext":"vtt"}],"en":[{"ext":"vtt"}]}}`,
		VTT:      "WEBVTT\n\n00:00:01.000 --> 00:00:03.500\nHello\n",
	}
	srv, root := newPipelineServer(t, dl)

	w, _ := do(t, srv.Handler(), "/api/getCaptions?url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dabc")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	want := `{"captions":[{"start":"00:00:01","end":"00:00:03","text":"Hello"}]}`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != ".autocaptions.lock" {
			t.Errorf("scratch entry left behind: %s", e.Name())
		}
	}
}

func TestEndToEndNoAutomaticCaptions(t *testing.T) {
	srv, _ := newPipelineServer(t, &testsupport.Downloader{ProbeOut: `{"id":"abc","automatic_captions":{}}`})

	w, body := do(t, srv.Handler(), "/api/getCaptions?url=https%3A%2F%2Fyoutu.be%2Fabc")
	if w.Code != http.StatusNotFound || body["error"] != "Captions not found" {
		t.Errorf("got %d %v, want 404 Captions not found", w.Code, body)
	}
}

func TestEndToEndDownloaderFailure(t *testing.T) {
	srv, _ := newPipelineServer(t, &testsupport.Downloader{ProbeErr: errors.New("ERROR: [generic] Unsupported URL")})

	w, body := do(t, srv.Handler(), "/api/getCaptions?url=not-a-video")
	if w.Code != http.StatusNotFound || body["error"] != "Captions not found" {
		t.Errorf("got %d %v, want 404 Captions not found", w.Code, body)
	}
}

func TestStatusFor(t *testing.T) {
	for kind, want := range errorTable {
		status, msg := StatusFor(captions.E(kind, "op", nil))
		if status != want.status || msg != want.message {
			t.Errorf("StatusFor(%v) = %d %q, want %d %q", kind, status, msg, want.status, want.message)
		}
	}
	if status, _ := StatusFor(errors.New("plain")); status != http.StatusInternalServerError {
		t.Errorf("plain error status = %d, want 500", status)
	}
}
