package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultExtensions() map[string]bool {
	return NormalizeExtensions([]string{".mp4", ".m4v", ".mov"})
}

func TestMatch_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "lecture.mp4")
	touch(t, dir, "clip.m4v")
	touch(t, dir, "trailer.mov")
	touch(t, dir, "audio.mp3")
	touch(t, dir, "readme.txt")

	files, err := Match(Criteria{Root: dir, Extensions: defaultExtensions()})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	want := []string{"clip.m4v", "lecture.mp4", "trailer.mov"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatch_NonRecursiveIgnoresSubdirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.mp4")
	os.MkdirAll(filepath.Join(dir, "sub"), 0o755)
	touch(t, filepath.Join(dir, "sub"), "nested.mp4")

	files, err := Match(Criteria{Root: dir, Extensions: defaultExtensions()})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.mp4" {
		t.Errorf("got %v, want only top.mp4", basenames(files))
	}
}

func TestMatch_RecursiveTree(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.mp4")
	os.MkdirAll(filepath.Join(dir, "sub"), 0o755)
	touch(t, filepath.Join(dir, "sub"), "y.mp4")
	touch(t, dir, "y.txt")

	files, err := Match(Criteria{
		Root:       dir,
		Extensions: NormalizeExtensions([]string{".mp4"}),
		Recursive:  true,
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	want := map[string]bool{
		filepath.Join(dir, "x.mp4"):        true,
		filepath.Join(dir, "sub", "y.mp4"): true,
	}
	if len(files) != len(want) {
		t.Fatalf("got %v, want exactly %d matches", files, len(want))
	}
	for _, f := range files {
		if !want[f] {
			t.Errorf("unexpected match %q", f)
		}
	}
}

func TestMatch_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "LOUD.MP4")
	touch(t, dir, "Mixed.Mov")

	files, err := Match(Criteria{Root: dir, Extensions: defaultExtensions()})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2 (case-insensitive ext matching)", len(files))
	}
}

func TestMatch_SortedAndRestartable(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "b"), 0o755)
	os.MkdirAll(filepath.Join(dir, "a"), 0o755)
	touch(t, filepath.Join(dir, "b"), "2.mp4")
	touch(t, filepath.Join(dir, "a"), "1.mp4")
	touch(t, dir, "0.mp4")

	c := Criteria{Root: dir, Extensions: defaultExtensions(), Recursive: true}
	first, err := Match(c)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	for i := 1; i < len(first); i++ {
		if first[i] < first[i-1] {
			t.Errorf("not sorted: %q before %q", first[i-1], first[i])
		}
	}

	second, err := Match(c)
	if err != nil {
		t.Fatalf("Match (second): %v", err)
	}
	if !sliceEqual(first, second) {
		t.Errorf("repeat scan differs: %v vs %v", first, second)
	}
}

func TestMatch_EmptyDir(t *testing.T) {
	files, err := Match(Criteria{Root: t.TempDir(), Extensions: defaultExtensions()})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestMatch_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "real.mp4")
	if err := os.Symlink(filepath.Join(dir, "real.mp4"), filepath.Join(dir, "link.mp4")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone.mp4"), filepath.Join(dir, "broken.mp4")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	for _, recursive := range []bool{false, true} {
		files, err := Match(Criteria{Root: dir, Extensions: defaultExtensions(), Recursive: recursive})
		if err != nil {
			t.Fatalf("Match (recursive=%v): %v", recursive, err)
		}
		want := []string{"link.mp4", "real.mp4"}
		if got := basenames(files); !sliceEqual(got, want) {
			t.Errorf("recursive=%v: got %v, want %v", recursive, got, want)
		}
	}
}

func TestNormalizeExtensions(t *testing.T) {
	set := NormalizeExtensions([]string{"MP4", ".M4v", " mov ", "", "."})
	want := []string{".mp4", ".m4v", ".mov"}
	if len(set) != len(want) {
		t.Fatalf("got %v, want %v", set, want)
	}
	for _, ext := range want {
		if !set[ext] {
			t.Errorf("missing %q in %v", ext, set)
		}
	}
}

// --- Helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
