// Package fonts resolves a configured font name to a .ttf/.otf file on disk.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// DefaultDir is searched when no directories are given.
const DefaultDir = "assets/fonts"

// ErrNotFound is returned when no font matches.
var ErrNotFound = errors.New("fonts: no matching font")

// ScanDir returns slash-separated paths of all font files under dir, relative to dir.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find resolves name to a font file. An existing file path is returned as is. Otherwise the
// dirs (DefaultDir when none) are scanned for files whose path contains name, ignoring case,
// spaces, dashes and underscores; a "Regular" face wins when several match.
func Find(name string, dirs ...string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return name, nil
	}
	if len(dirs) == 0 {
		dirs = []string{DefaultDir}
	}
	want := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	var matches []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			return "", err
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
