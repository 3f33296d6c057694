package scan_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"bmpview/scan"
)

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bmp", "B.BMP", "c.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.bmp"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	got, err := scan.Files([]string{dir, filepath.Join(dir, "c.png"), filepath.Join(dir, "a.bmp")})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{
		filepath.Join(dir, "B.BMP"),
		filepath.Join(dir, "a.bmp"),
		filepath.Join(dir, "c.png"),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Files: got %v want %v", got, want)
	}
}

func TestFilesMissing(t *testing.T) {
	if _, err := scan.Files([]string{filepath.Join(t.TempDir(), "nope.bmp")}); err == nil {
		t.Fatalf("Files(missing): got nil error")
	}
}
