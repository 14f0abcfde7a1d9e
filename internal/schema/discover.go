package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// schemaExtensions are the file extensions treated as schema files.
var schemaExtensions = map[string]bool{
	".yml":  true,
	".yaml": true,
}

// Discover expands the given paths into the sorted, de-duplicated set
// of schema files to scan. Directories are walked recursively; explicit
// file arguments are kept only when the extension matches. A path that
// does not exist is an input-loading failure and aborts the run.
func Discover(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", p, err)
		}

		if !info.IsDir() {
			if schemaExtensions[filepath.Ext(p)] {
				add(filepath.Clean(p))
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && schemaExtensions[filepath.Ext(path)] {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
