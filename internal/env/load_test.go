package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"VOXED_CONFIG=config/alt.yaml", "VOXED_CONFIG", "config/alt.yaml", true},
		{"  A = \"quoted value\" ", "A", "quoted value", true},
		{"export B='x'", "B", "x", true},
		{"EMPTY=", "EMPTY", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=novalue", "", "", false},
		{"justtext", "", "", false},
	}
	for _, tt := range tests {
		k, v, ok := parseLine(tt.line)
		if k != tt.key || v != tt.value || ok != tt.ok {
			t.Errorf("parseLine(%q) = %q, %q, %v", tt.line, k, v, ok)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("VOXED_TEST_NEW=fresh\nVOXED_TEST_SET=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOXED_TEST_SET", "from-env")
	t.Setenv("VOXED_TEST_NEW", "")
	os.Unsetenv("VOXED_TEST_NEW")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("VOXED_TEST_NEW"); got != "fresh" {
		t.Errorf("VOXED_TEST_NEW = %q", got)
	}
	if got := os.Getenv("VOXED_TEST_SET"); got != "from-env" {
		t.Errorf("VOXED_TEST_SET = %q, want existing value kept", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("Load(missing) = %v", err)
	}
}
