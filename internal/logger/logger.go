package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the editor log file, relative to the working directory.
const DefaultPath = "logs/editor.txt"

// maxLines bounds the in-memory history; the file keeps everything.
const maxLines = 500

// Logger keeps recent lines in memory (for the console) and appends every line to a file on disk.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger appending to path and ensures its directory exists. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log stores a line prefixed with [timestamp] and appends it to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
