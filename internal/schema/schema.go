// Package schema reads dbt schema files (.yml/.yaml) into column
// documentation records for the check hooks.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbtcheck/dbtcheck/pkg/check"
)

// File is one parsed schema file.
type File struct {
	Path    string
	Version int     `yaml:"version"`
	Models  []Model `yaml:"models"`
}

// Model is a model entry in a schema file.
type Model struct {
	Name        string   `yaml:"name"`
	Description *string  `yaml:"description"`
	Columns     []Column `yaml:"columns"`
}

// Column is a column entry under a model.
// Description stays nil when the key is absent; an explicit empty
// string in the file is kept as a pointer to "".
type Column struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// ParseError reports an unreadable or unparseable schema file.
// Any ParseError aborts the run before the hooks execute.
type ParseError struct {
	File    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Load reads and parses a single schema file.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{File: path, Message: fmt.Sprintf("cannot read file: %v", err)}
	}

	f := &File{Path: path}
	if err := yaml.Unmarshal(content, f); err != nil {
		return nil, &ParseError{File: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	return f, nil
}

// LoadAll parses every path in order. The first failure aborts.
func LoadAll(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Records flattens parsed files into one SchemaRecord per model,
// keeping file order and in-file column order.
func Records(files []*File) []check.SchemaRecord {
	var records []check.SchemaRecord
	for _, f := range files {
		for _, m := range f.Models {
			cols := make([]check.SchemaColumn, 0, len(m.Columns))
			for _, c := range m.Columns {
				cols = append(cols, check.SchemaColumn{Name: c.Name, Description: c.Description})
			}
			records = append(records, check.SchemaRecord{
				SourceFile:  f.Path,
				ModelName:   m.Name,
				Description: m.Description,
				Columns:     cols,
			})
		}
	}
	return records
}
