package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "editor.txt")
	l := New(path)
	l.now = fixedClock
	l.Log("reset")
	l.Logf("colour %d selected", 3)

	want := []string{
		"[2026-03-04 05:06:07] reset",
		"[2026-03-04 05:06:07] colour 3 selected",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strings.Join(want, "\n")+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Error("Lines() exposed internal storage")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("kept %d lines, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "line 25") {
		t.Errorf("oldest kept line = %q", lines[0])
	}
}
