package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan recursively enumerates files under root whose extension is in the
// allow-list and assigns each a monotonically increasing identifier in
// traversal order. The order is lexical by path, so repeated scans of an
// unchanged folder produce the same sequence.
func Scan(root string, extensions []string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input folder %s: %w", root, ErrNotFound)
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported images under %s: %w", root, ErrNotFound)
	}

	sort.Strings(paths)

	entries := make([]Entry, len(paths))
	for i, path := range paths {
		entries[i] = Entry{
			ID:   fmt.Sprintf("%03d-%s", i+1, sanitizeStem(path)),
			Path: path,
		}
	}

	return entries, nil
}

// sanitizeStem reduces a file name to marker-safe characters. The numeric
// prefix keeps identifiers unique even when two files share a stem.
func sanitizeStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
