package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/autocaptions/internal/testsupport"
)

func TestWatcherCallsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, dir, "config.yaml", "logging:\n  level: info\n")
	log := testsupport.NewLogger()

	calls := make(chan string, 10)
	w, err := New(path, func(_ context.Context, p string) error {
		calls <- p
		return nil
	}, log)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Unrelated files in the same directory are ignored.
	testsupport.WriteFile(t, dir, "other.yaml", "x: 1\n")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-calls:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("handler path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Start() = %v, want context.Canceled", err)
	}
}

func TestLogLevelReloader(t *testing.T) {
	dir := t.TempDir()
	log := testsupport.NewLogger()
	handler := LogLevelReloader(log)

	path := testsupport.WriteFile(t, dir, "config.yaml", "logging:\n  level: warn\n")
	if err := handler(context.Background(), path); err != nil {
		t.Fatalf("handler() error = %v", err)
	}
	if log.Level() != "warn" {
		t.Errorf("level = %q, want warn", log.Level())
	}

	bad := testsupport.WriteFile(t, dir, "bad.yaml", "logging: [\n")
	if err := handler(context.Background(), bad); err == nil {
		t.Error("expected error for malformed config")
	}
	if log.Level() != "warn" {
		t.Errorf("level changed on failed reload: %q", log.Level())
	}
}
