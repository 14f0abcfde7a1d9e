package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbtcheck/dbtcheck/internal/cli/config"
	"github.com/dbtcheck/dbtcheck/internal/cli/testutil"
	"github.com/dbtcheck/dbtcheck/internal/tracking"
	"github.com/dbtcheck/dbtcheck/pkg/check/columndesc"
)

// runCLI executes the root command with the given args and captured output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestColumnDescCommand(t *testing.T) {
	t.Run("consistent descriptions pass", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "staging.yml", `
version: 2
models:
  - name: stg_customers
    columns:
      - name: customer_id
        description: Primary key of the customer
`)
		testutil.WriteSchema(t, root, "marts.yml", `
version: 2
models:
  - name: dim_customers
    columns:
      - name: customer_id
        description: Primary key of the customer
`)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking")

		require.NoError(t, err)
		assert.Contains(t, out, "All column descriptions consistent")
	})

	t.Run("divergent descriptions fail", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "staging.yml", `
version: 2
models:
  - name: stg_customers
    columns:
      - name: customer_id
        description: Primary key of the customer
`)
		testutil.WriteSchema(t, root, "marts.yml", `
version: 2
models:
  - name: dim_customers
    columns:
      - name: customer_id
        description: Customer surrogate key
`)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 columns have conflicting descriptions")
		assert.Contains(t, out, "customer_id: has different descriptions:")
		assert.Contains(t, out, "  - 1: Primary key of the customer")
		assert.Contains(t, out, "  - 1: Customer surrogate key")
	})

	t.Run("absent and empty descriptions are distinct", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "a.yml", `
version: 2
models:
  - name: one
    columns:
      - name: amount
        description: ""
`)
		testutil.WriteSchema(t, root, "b.yml", `
version: 2
models:
  - name: two
    columns:
      - name: amount
`)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking")

		require.Error(t, err)
		assert.Contains(t, out, "amount: has different descriptions:")
		assert.Contains(t, out, "(no description)")
	})

	t.Run("ignore flag excludes a column", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "a.yml", `
version: 2
models:
  - name: one
    columns:
      - name: updated_at
        description: Load timestamp
`)
		testutil.WriteSchema(t, root, "b.yml", `
version: 2
models:
  - name: two
    columns:
      - name: updated_at
        description: Last modified
`)

		_, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking",
			"--ignore", "updated_at")

		assert.NoError(t, err)
	})

	t.Run("empty project passes", func(t *testing.T) {
		root := testutil.SetupProject(t)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking")

		require.NoError(t, err)
		assert.Contains(t, out, "All column descriptions consistent")
	})

	t.Run("json report", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "a.yml", `
version: 2
models:
  - name: one
    columns:
      - name: customer_id
        description: Primary key
`)
		testutil.WriteSchema(t, root, "b.yml", `
version: 2
models:
  - name: two
    columns:
      - name: customer_id
        description: Something else
`)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking",
			"--format", "json")

		require.Error(t, err)
		var report struct {
			Summary struct {
				FilesScanned   int    `json:"files_scanned"`
				ColumnsChecked int    `json:"columns_checked"`
				Conflicts      int    `json:"conflicts"`
				Status         string `json:"status"`
			} `json:"summary"`
			Conflicts []struct {
				Column string `json:"column"`
			} `json:"conflicts"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "fail", report.Summary.Status)
		assert.Equal(t, 2, report.Summary.FilesScanned)
		assert.Equal(t, 1, report.Summary.Conflicts)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, "customer_id", report.Conflicts[0].Column)
	})

	t.Run("missing manifest aborts the run", func(t *testing.T) {
		root := t.TempDir()

		_, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load manifest file")
	})

	t.Run("explicit schema file argument", func(t *testing.T) {
		root := testutil.SetupProject(t)
		path := testutil.WriteSchema(t, root, "only.yml", `
version: 2
models:
  - name: one
    columns:
      - name: id
        description: Row id
`)

		out, _, err := runCLI(t, "column-desc", "--project-dir", root, "--no-tracking", path)

		require.NoError(t, err)
		assert.Contains(t, out, "All column descriptions consistent")
	})

	t.Run("records a tracking event", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "a.yml", `
version: 2
models:
  - name: one
    columns:
      - name: id
        description: Row id
`)

		_, _, err := runCLI(t, "column-desc", "--project-dir", root)
		require.NoError(t, err)

		store, err := tracking.Open(filepath.Join(root, config.DefaultTrackingPath))
		require.NoError(t, err)
		defer store.Close()

		events, err := store.Events(columndesc.HookName)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "test_project", events[0].ProjectName)
		assert.Equal(t, 0, events[0].Status)
	})
}

func TestModelDescCommand(t *testing.T) {
	t.Run("documented models pass", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "schema.yml", `
version: 2
models:
  - name: customers
    description: One row per customer
`)

		out, _, err := runCLI(t, "model-desc", "--project-dir", root, "--no-tracking")

		require.NoError(t, err)
		assert.Contains(t, out, "All models documented")
	})

	t.Run("undocumented model fails", func(t *testing.T) {
		root := testutil.SetupProject(t)
		testutil.WriteSchema(t, root, "schema.yml", `
version: 2
models:
  - name: customers
`)

		out, _, err := runCLI(t, "model-desc", "--project-dir", root, "--no-tracking")

		require.Error(t, err)
		assert.Contains(t, out, "customers: missing description")
	})
}

func TestHooksCommand(t *testing.T) {
	root := testutil.SetupProject(t)

	out, _, err := runCLI(t, "hooks", "--project-dir", root, "--no-tracking")

	require.NoError(t, err)
	assert.Contains(t, out, "column-desc-are-same")
	assert.Contains(t, out, "model-has-description")
}

func TestVersionCommand(t *testing.T) {
	root := testutil.SetupProject(t)

	out, _, err := runCLI(t, "version", "--project-dir", root, "--no-tracking")

	require.NoError(t, err)
	assert.Contains(t, out, "dbtcheck")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "dbtcheck", cmd.Use)
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")

	flags := []string{"config", "project-dir", "manifest", "output", "verbose", "no-tracking"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}
