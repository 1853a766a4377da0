// Package scan discovers candidate video files under an input directory.
// Matching is read-only; the same criteria over an unchanged tree always
// yields the same sorted result.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Criteria selects which files a scan matches. Extensions must come from
// [NormalizeExtensions] so membership checks are lowercase and dotted.
type Criteria struct {
	Root       string
	Extensions map[string]bool
	Recursive  bool
}

// NormalizeExtensions lowercases each extension and ensures a leading dot.
// Empty tokens are dropped.
func NormalizeExtensions(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.ToLower(strings.TrimSpace(ext))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// Match enumerates the regular files under c.Root whose lowercased extension
// is in c.Extensions. Non-recursive mode reads only direct children;
// recursive mode walks the full subtree. Results are sorted
// lexicographically for deterministic processing order.
//
// The caller is responsible for checking that c.Root exists and is a
// directory before matching.
func Match(c Criteria) ([]string, error) {
	if c.Recursive {
		return matchTree(c)
	}
	return matchFlat(c)
}

func matchFlat(c Criteria) ([]string, error) {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		path := filepath.Join(c.Root, entry.Name())
		if !isRegular(path, entry.Type()) {
			continue
		}
		if c.Extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func matchTree(c Criteria) ([]string, error) {
	var files []string
	err := filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isRegular(path, d.Type()) {
			return nil
		}
		if c.Extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// isRegular reports whether path is a regular file, resolving symlinks so
// a linked video still counts as a candidate. Broken links are excluded.
func isRegular(path string, mode fs.FileMode) bool {
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
