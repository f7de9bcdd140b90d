// Package testsupport provides fakes shared by package tests.
package testsupport

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Logger records formatted log lines in memory.
type Logger struct {
	mu    sync.Mutex
	lines []string
	level string
}

func NewLogger() *Logger {
	return &Logger{level: "debug"}
}

func (l *Logger) record(level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, "["+level+"] "+fmt.Sprintf(msg, args...))
}

func (l *Logger) Debug(_ context.Context, msg string, args ...interface{}) {
	l.record("DEBUG", msg, args...)
}

func (l *Logger) Info(_ context.Context, msg string, args ...interface{}) {
	l.record("INFO", msg, args...)
}

func (l *Logger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.record("WARN", msg, args...)
}

func (l *Logger) Error(_ context.Context, msg string, args ...interface{}) {
	l.record("ERROR", msg, args...)
}

func (l *Logger) SetLevel(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the last level passed to SetLevel.
func (l *Logger) Level() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Lines returns a copy of every recorded line.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any line at level contains substr.
func (l *Logger) Contains(level, substr string) bool {
	for _, line := range l.Lines() {
		if strings.HasPrefix(line, "["+level+"]") && strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
