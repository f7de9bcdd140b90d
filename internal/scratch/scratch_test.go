package scratch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/autocaptions/internal/testsupport"
)

func TestAcquireAndRelease(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := New(root, Options{}, testsupport.NewLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ws, err := s.Acquire(ctx, "abc")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if ws.Dir != filepath.Join(root, "req-abc") {
		t.Errorf("Dir = %q", ws.Dir)
	}
	testsupport.WriteFile(t, ws.Dir, "captions.en.vtt", "WEBVTT\n")
	relocated := testsupport.WriteFile(t, root, "req-abc-123.vtt", "WEBVTT\n")
	other := testsupport.WriteFile(t, root, "req-other-1.vtt", "WEBVTT\n")

	ws.Release(ctx)

	if testsupport.Exists(ws.Dir) {
		t.Error("request dir should be removed")
	}
	if testsupport.Exists(relocated) {
		t.Error("relocated file should be removed")
	}
	if !testsupport.Exists(other) {
		t.Error("another request's file must be left alone")
	}
}

func TestAcquireGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir(), Options{}, testsupport.NewLogger())
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ws, err := s.Acquire(ctx, "")
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		if seen[ws.Dir] {
			t.Fatalf("duplicate dir %q", ws.Dir)
		}
		seen[ws.Dir] = true
	}
}

func TestAcquireRejectsReusedID(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir(), Options{}, testsupport.NewLogger())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Acquire(ctx, "dup"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Acquire(ctx, "dup"); err == nil {
		t.Error("Acquire() with a reused ID should fail")
	}
}

func TestPurge(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, root, "req-old/captions.en.vtt", "x")
	testsupport.WriteFile(t, root, "req-old-1.vtt", "x")
	keep := testsupport.WriteFile(t, root, "notes.txt", "x")

	s, err := New(root, Options{}, testsupport.NewLogger())
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.Purge(context.Background())
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Purge() removed %d, want 2", n)
	}
	if !testsupport.Exists(keep) {
		t.Error("unrelated file should survive purge")
	}
	entries, _ := os.ReadDir(root)
	for _, e := range entries {
		if e.Name() == "req-old" || e.Name() == "req-old-1.vtt" {
			t.Errorf("%s survived purge", e.Name())
		}
	}
}

func TestExclusiveLock(t *testing.T) {
	root := t.TempDir()
	first, err := New(root, Options{Exclusive: true}, testsupport.NewLogger())
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}

	_, err = New(root, Options{Exclusive: true}, testsupport.NewLogger())
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("second New() error = %v, want ErrLocked", err)
	}

	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	again, err := New(root, Options{Exclusive: true}, testsupport.NewLogger())
	if err != nil {
		t.Fatalf("New() after Close error = %v", err)
	}
	again.Close()
}
