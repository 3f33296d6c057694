// Package scan expands command line paths into the bitmap files to process.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Files returns the given regular files as they are and, for each directory,
// the *.bmp files directly inside it. Paths are made absolute.
func Files(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var res []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", p, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %q: %w", p, err)
		}
		if !info.IsDir() {
			res = append(res, abs)
			continue
		}

		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, fmt.Errorf("unable to read folder %q: %w", abs, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".bmp") {
				continue
			}
			res = append(res, filepath.Join(abs, e.Name()))
		}
	}

	slices.Sort(res)
	return slices.Compact(res), nil
}
