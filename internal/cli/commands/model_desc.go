package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbtcheck/dbtcheck/internal/cli/output"
	"github.com/dbtcheck/dbtcheck/internal/manifest"
	"github.com/dbtcheck/dbtcheck/pkg/check"
	"github.com/dbtcheck/dbtcheck/pkg/check/modeldesc"
)

// ModelDescOptions holds options for the model-desc command.
type ModelDescOptions struct {
	Paths  []string
	Format string
}

// NewModelDescCommand creates the model-desc command.
func NewModelDescCommand() *cobra.Command {
	opts := &ModelDescOptions{}
	cmd := &cobra.Command{
		Use:   "model-desc [paths...]",
		Short: "Check every model carries a description",
		Long: `Check that every model declared in the scanned schema files has a
non-empty description.`,
		Example: `  # Check all schema files under models/
  dbtcheck model-desc

  # Check specific files
  dbtcheck model-desc models/staging/schema.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runModelDesc(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func runModelDesc(cmd *cobra.Command, opts *ModelDescOptions) error {
	cmdCtx, cleanup := NewCommandContext(cmd)
	defer cleanup()

	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}

	start := time.Now()

	records, fileCount, err := loadSchemaRecords(cfg, opts.Paths)
	if err != nil {
		return err
	}

	res := modeldesc.Run(records)
	elapsed := time.Since(start)

	cmdCtx.Logger.Debug("model descriptions checked",
		"files", fileCount, "models", res.ModelsChecked,
		"missing", len(res.Missing), "elapsed", elapsed)

	renderModelDescResults(r, res, fileCount)

	cmdCtx.Tracker.TrackHookEvent(
		modeldesc.HookName, m.Metadata.ProjectName, res.Status.Int(), elapsed)

	if res.Status == check.StatusFail {
		return fmt.Errorf("%d models are missing a description", len(res.Missing))
	}
	return nil
}

// modelDescReport is the JSON shape of a model-desc run.
type modelDescReport struct {
	ModelsChecked int               `json:"models_checked"`
	Status        string            `json:"status"`
	Missing       []missingModelOut `json:"missing,omitempty"`
}

type missingModelOut struct {
	Model      string `json:"model"`
	SourceFile string `json:"source_file"`
}

func renderModelDescResults(r *output.Renderer, res modeldesc.Result, fileCount int) {
	if r.EffectiveMode() == output.ModeJSON {
		report := modelDescReport{
			ModelsChecked: res.ModelsChecked,
			Status:        res.Status.String(),
		}
		for _, m := range res.Missing {
			report.Missing = append(report.Missing, missingModelOut{
				Model:      m.Model,
				SourceFile: m.SourceFile,
			})
		}
		_ = r.JSON(report)
		return
	}

	if len(res.Missing) == 0 {
		r.Success(fmt.Sprintf("All models documented (%d models in %d files)",
			res.ModelsChecked, fileCount))
		return
	}

	for _, m := range res.Missing {
		r.Printf("%s: missing description %s\n",
			r.Styles().Error.Render(m.Model),
			r.Styles().Muted.Render("("+m.SourceFile+")"),
		)
	}
	r.Printf("\n%d of %d models are missing a description\n",
		len(res.Missing), res.ModelsChecked)
}
