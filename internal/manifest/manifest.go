// Package manifest loads the dbt manifest artifact.
//
// A loadable manifest is the precondition for every hook run: it proves
// the user is inside a compiled dbt project. The hooks themselves only
// need the metadata header, so parsing stays deliberately shallow.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is where dbt writes the manifest relative to the project root.
const DefaultPath = "target/manifest.json"

// Manifest is the subset of dbt's manifest.json that dbtcheck reads.
type Manifest struct {
	Metadata Metadata                   `json:"metadata"`
	Nodes    map[string]json.RawMessage `json:"nodes"`
}

// Metadata is the manifest header.
type Metadata struct {
	ProjectName string `json:"project_name"`
	DbtVersion  string `json:"dbt_version"`
	GeneratedAt string `json:"generated_at"`
}

// NodeCount returns the number of nodes in the manifest.
func (m *Manifest) NodeCount() int { return len(m.Nodes) }

// OpenError reports a manifest that could not be read or decoded.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to load manifest file %s: %v", e.Path, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}

	var m Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	return &m, nil
}
