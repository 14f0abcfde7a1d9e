package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dbtcheck/dbtcheck/internal/cli/output"
	"github.com/dbtcheck/dbtcheck/pkg/check"
)

// NewHooksCommand creates the hooks command listing registered checks.
func NewHooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List available checks",
		Long:  `List every registered check with its name and description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup := NewCommandContext(cmd)
			defer cleanup()
			renderHooks(cmdCtx.Renderer)
			return nil
		},
	}
	return cmd
}

type hookOut struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func renderHooks(r *output.Renderer) {
	hooks := check.GetAll()

	if r.EffectiveMode() == output.ModeJSON {
		out := make([]hookOut, 0, len(hooks))
		for _, h := range hooks {
			out = append(out, hookOut{Name: h.Name, Description: h.Description})
		}
		_ = r.JSON(out)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Hook", "Description"})
	for _, h := range hooks {
		t.AppendRow(table.Row{h.Name, h.Description})
	}
	t.Render()
}
