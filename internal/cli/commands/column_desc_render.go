package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dbtcheck/dbtcheck/internal/cli/output"
	"github.com/dbtcheck/dbtcheck/pkg/check/columndesc"
)

// ConflictReport is the JSON shape of a column-desc run.
type ConflictReport struct {
	Summary   ConflictSummary    `json:"summary"`
	Conflicts []ConflictGroupOut `json:"conflicts,omitempty"`
}

// ConflictSummary holds run-level counts.
type ConflictSummary struct {
	FilesScanned   int    `json:"files_scanned"`
	ColumnsChecked int    `json:"columns_checked"`
	Conflicts      int    `json:"conflicts"`
	Status         string `json:"status"`
}

// ConflictGroupOut is one conflicting column in the JSON report.
type ConflictGroupOut struct {
	Column       string      `json:"column"`
	Descriptions []BucketOut `json:"descriptions"`
}

// BucketOut is one distinct description value and its occurrence count.
// Description is null for the undocumented bucket.
type BucketOut struct {
	Description *string `json:"description"`
	Count       int     `json:"count"`
}

func renderColumnDescResults(r *output.Renderer, format string, res columndesc.Result, fileCount int) {
	switch {
	case format == "table":
		renderConflictTable(r, res)
	case r.EffectiveMode() == output.ModeJSON:
		_ = r.JSON(buildConflictReport(res, fileCount))
	default:
		renderConflictText(r, res, fileCount)
	}
}

func buildConflictReport(res columndesc.Result, fileCount int) ConflictReport {
	report := ConflictReport{
		Summary: ConflictSummary{
			FilesScanned:   fileCount,
			ColumnsChecked: res.ColumnsChecked,
			Conflicts:      len(res.Conflicts),
			Status:         res.Status.String(),
		},
	}
	for _, c := range res.Conflicts {
		group := ConflictGroupOut{Column: c.Column}
		for _, b := range c.Buckets {
			group.Descriptions = append(group.Descriptions, BucketOut{
				Description: b.Description,
				Count:       b.Count,
			})
		}
		report.Conflicts = append(report.Conflicts, group)
	}
	return report
}

func renderConflictText(r *output.Renderer, res columndesc.Result, fileCount int) {
	if len(res.Conflicts) == 0 {
		r.Success(fmt.Sprintf("All column descriptions consistent (%d columns in %d files)",
			res.ColumnsChecked, fileCount))
		return
	}

	for _, c := range res.Conflicts {
		r.Printf("%s: has different descriptions:\n", r.Styles().Error.Render(c.Column))
		for _, b := range c.Buckets {
			r.Printf("  - %s: %s\n",
				r.Styles().Warning.Render(fmt.Sprintf("%d", b.Count)),
				r.Styles().Warning.Render(bucketText(b)),
			)
		}
	}
	r.Printf("\n%d of %d columns have conflicting descriptions\n",
		len(res.Conflicts), res.ColumnsChecked)
}

func renderConflictTable(r *output.Renderer, res columndesc.Result) {
	if len(res.Conflicts) == 0 {
		r.Success("All column descriptions consistent")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Description", "Count"})

	for _, c := range res.Conflicts {
		for i, b := range c.Buckets {
			name := ""
			if i == 0 {
				name = c.Column
			}
			t.AppendRow(table.Row{name, bucketText(b), b.Count})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func bucketText(b columndesc.Bucket) string {
	if b.Description == nil {
		return noDescriptionMarker
	}
	return *b.Description
}
