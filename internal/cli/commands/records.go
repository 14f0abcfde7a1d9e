package commands

import (
	"os"
	"path/filepath"

	"github.com/dbtcheck/dbtcheck/internal/cli/config"
	"github.com/dbtcheck/dbtcheck/internal/schema"
	"github.com/dbtcheck/dbtcheck/pkg/check"
)

// loadSchemaRecords discovers and parses schema files for the given
// paths. With no paths, the project's models directory is scanned when
// it exists, otherwise the project root. Returns the flattened records
// and the number of schema files read.
func loadSchemaRecords(cfg *config.Config, paths []string) ([]check.SchemaRecord, int, error) {
	if len(paths) == 0 {
		modelsDir := filepath.Join(cfg.ProjectRoot, "models")
		if _, err := os.Stat(modelsDir); err == nil {
			paths = []string{modelsDir}
		} else {
			paths = []string{cfg.ProjectRoot}
		}
	}

	found, err := schema.Discover(paths)
	if err != nil {
		return nil, 0, err
	}

	files, err := schema.LoadAll(found)
	if err != nil {
		return nil, 0, err
	}

	return schema.Records(files), len(files), nil
}

// buildIgnoreSet merges config-level and flag-level ignore lists.
func buildIgnoreSet(lists ...[]string) map[string]struct{} {
	ignore := make(map[string]struct{})
	for _, list := range lists {
		for _, name := range list {
			if name != "" {
				ignore[name] = struct{}{}
			}
		}
	}
	return ignore
}
