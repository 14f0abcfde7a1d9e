package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbtcheck/dbtcheck/internal/cli/output"
	"github.com/dbtcheck/dbtcheck/internal/manifest"
	"github.com/dbtcheck/dbtcheck/pkg/check"
	"github.com/dbtcheck/dbtcheck/pkg/check/columndesc"
)

// noDescriptionMarker labels the undocumented bucket in reports.
const noDescriptionMarker = "(no description)"

// ColumnDescOptions holds options for the column-desc command.
type ColumnDescOptions struct {
	Paths  []string // files or directories to scan
	Ignore []string // column names excluded from comparison
	Format string   // output format override
}

// NewColumnDescCommand creates the column-desc command.
func NewColumnDescCommand() *cobra.Command {
	opts := &ColumnDescOptions{}
	cmd := &cobra.Command{
		Use:   "column-desc [paths...]",
		Short: "Check column descriptions are the same across schema files",
		Long: `Check that every occurrence of a column name carries the same
description across all schema files.

Directories are scanned recursively for .yml/.yaml files. With no
paths, the project's models directory is scanned. A loadable dbt
manifest is required; run dbt compile or dbt build first.`,
		Example: `  # Check all schema files under models/
  dbtcheck column-desc

  # Check specific files (pre-commit passes changed files)
  dbtcheck column-desc models/staging/schema.yml models/marts/schema.yml

  # Skip audit columns maintained per-model on purpose
  dbtcheck column-desc --ignore updated_at --ignore _loaded_at

  # Machine-readable report
  dbtcheck column-desc --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runColumnDesc(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Column names to exclude from comparison")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, table")

	return cmd
}

func runColumnDesc(cmd *cobra.Command, opts *ColumnDescOptions) error {
	cmdCtx, cleanup := NewCommandContext(cmd)
	defer cleanup()

	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	if opts.Format != "" && opts.Format != "table" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// The manifest must load before anything else runs.
	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("manifest loaded",
		"project", m.Metadata.ProjectName, "nodes", m.NodeCount())

	start := time.Now()

	records, fileCount, err := loadSchemaRecords(cfg, opts.Paths)
	if err != nil {
		return err
	}

	ignore := buildIgnoreSet(cfg.CheckIgnore(columndesc.HookName), opts.Ignore)
	res := columndesc.Run(records, ignore)
	elapsed := time.Since(start)

	if res.SkippedNoName > 0 {
		cmdCtx.Logger.Debug("skipped column entries without a name", "count", res.SkippedNoName)
	}
	cmdCtx.Logger.Debug("column descriptions checked",
		"files", fileCount, "columns", res.ColumnsChecked,
		"conflicts", len(res.Conflicts), "elapsed", elapsed)

	renderColumnDescResults(r, opts.Format, res, fileCount)

	cmdCtx.Tracker.TrackHookEvent(
		columndesc.HookName, m.Metadata.ProjectName, res.Status.Int(), elapsed)

	if res.Status == check.StatusFail {
		return fmt.Errorf("%d columns have conflicting descriptions", len(res.Conflicts))
	}
	return nil
}
