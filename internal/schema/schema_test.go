package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses models and columns", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "schema.yml", `
version: 2
models:
  - name: orders
    description: All orders
    columns:
      - name: order_id
        description: Primary key
      - name: status
`)

		f, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, f.Version)
		require.Len(t, f.Models, 1)

		m := f.Models[0]
		assert.Equal(t, "orders", m.Name)
		require.NotNil(t, m.Description)
		assert.Equal(t, "All orders", *m.Description)
		require.Len(t, m.Columns, 2)
		assert.Equal(t, "Primary key", *m.Columns[0].Description)
		assert.Nil(t, m.Columns[1].Description, "absent description stays nil")
	})

	t.Run("empty string description is not absent", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "schema.yml", `
models:
  - name: orders
    columns:
      - name: status
        description: ""
`)

		f, err := Load(path)
		require.NoError(t, err)
		desc := f.Models[0].Columns[0].Description
		require.NotNil(t, desc)
		assert.Equal(t, "", *desc)
	})

	t.Run("invalid yaml is a parse error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "broken.yml", "models:\n  - name: [unclosed")

		_, err := Load(path)
		require.Error(t, err)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, path, perr.File)
	})

	t.Run("missing file is a parse error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yml", "models:\n  - name: a\n")
	b := writeFile(t, dir, "b.yml", "models:\n  - name: b\n")

	files, err := LoadAll([]string{a, b})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a", files[0].Models[0].Name)

	t.Run("first failure aborts", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.yml", ":\n\t-")
		_, err := LoadAll([]string{a, bad, b})
		require.Error(t, err)
	})
}

func TestRecords(t *testing.T) {
	desc := "Primary key"
	files := []*File{
		{
			Path: "a.yml",
			Models: []Model{
				{Name: "orders", Columns: []Column{
					{Name: "order_id", Description: &desc},
					{Name: "status"},
				}},
				{Name: "customers"},
			},
		},
		{Path: "b.yml"},
	}

	records := Records(files)
	require.Len(t, records, 2)
	assert.Equal(t, "a.yml", records[0].SourceFile)
	assert.Equal(t, "orders", records[0].ModelName)
	require.Len(t, records[0].Columns, 2)
	assert.Equal(t, "order_id", records[0].Columns[0].Name)
	assert.Equal(t, "customers", records[1].ModelName)
	assert.Empty(t, records[1].Columns)
}

func TestDiscover(t *testing.T) {
	t.Run("walks directories recursively", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "models/staging/schema.yml", "")
		writeFile(t, dir, "models/marts/schema.yaml", "")
		writeFile(t, dir, "models/readme.md", "")
		writeFile(t, dir, "models/query.sql", "")

		files, err := Discover([]string{dir})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Contains(t, files[0], "marts")
		assert.Contains(t, files[1], "staging")
	})

	t.Run("explicit file with wrong extension is dropped", func(t *testing.T) {
		dir := t.TempDir()
		yml := writeFile(t, dir, "schema.yml", "")
		txt := writeFile(t, dir, "notes.txt", "")

		files, err := Discover([]string{yml, txt})
		require.NoError(t, err)
		assert.Equal(t, []string{yml}, files)
	})

	t.Run("duplicate arguments are de-duplicated", func(t *testing.T) {
		dir := t.TempDir()
		yml := writeFile(t, dir, "schema.yml", "")

		files, err := Discover([]string{yml, yml, dir})
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("sorted output", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "b.yml", "")
		writeFile(t, dir, "a.yml", "")

		files, err := Discover([]string{dir})
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Less(t, files[0], files[1])
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := Discover([]string{filepath.Join(t.TempDir(), "absent")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot access path")
	})

	t.Run("no arguments yields empty set", func(t *testing.T) {
		files, err := Discover(nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
