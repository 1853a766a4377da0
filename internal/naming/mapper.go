// Package naming maps source video paths to destination audio paths.
// The output tree mirrors the input tree: directory structure relative to
// the input root is reproduced under the output root, and the file
// extension is replaced with the target audio extension.
package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// TargetExt is the extension every mapped destination ends in.
const TargetExt = ".mp3"

// ErrOutsideRoot is returned when a source path does not descend from the
// input root. Callers guarantee descent for discovered files; this guards
// against contract violations.
var ErrOutsideRoot = errors.New("source path is not inside the input directory")

// MapDestination computes the output path for source: source relative to
// inputRoot, re-rooted under outputRoot, with the extension replaced by
// [TargetExt]. Pure path arithmetic; no filesystem access.
func MapDestination(source, inputRoot, outputRoot string) (string, error) {
	rel, err := filepath.Rel(inputRoot, source)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, source)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, source)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + TargetExt
	return filepath.Join(outputRoot, rel), nil
}
