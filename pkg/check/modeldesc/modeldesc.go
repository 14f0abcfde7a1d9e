// Package modeldesc flags models that have no description in their
// schema file.
package modeldesc

import (
	"sort"

	"github.com/dbtcheck/dbtcheck/pkg/check"
)

// HookName is the registered identifier of this hook.
const HookName = "model-has-description"

func init() {
	check.Register(check.HookDef{
		Name:        HookName,
		Description: "Check every model carries a description",
		Rationale: `Undocumented models are invisible in the docs site and force readers
to reverse-engineer intent from SQL. Requiring a description per model
keeps the documentation baseline from eroding.`,
	})
}

// Missing is one model without a description.
type Missing struct {
	Model      string
	SourceFile string
}

// Result holds the outcome of one run of the hook.
type Result struct {
	Status        check.Status
	ModelsChecked int
	Missing       []Missing
}

// Run reports every record whose model-level description is absent or
// blank, sorted by model name then source file. Records without a model
// name are skipped; they cannot be addressed by the user.
func Run(records []check.SchemaRecord) Result {
	var missing []Missing
	checked := 0
	for _, rec := range records {
		if rec.ModelName == "" {
			continue
		}
		checked++
		if rec.Description == nil || *rec.Description == "" {
			missing = append(missing, Missing{Model: rec.ModelName, SourceFile: rec.SourceFile})
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Model != missing[j].Model {
			return missing[i].Model < missing[j].Model
		}
		return missing[i].SourceFile < missing[j].SourceFile
	})

	status := check.StatusPass
	if len(missing) > 0 {
		status = check.StatusFail
	}
	return Result{Status: status, ModelsChecked: checked, Missing: missing}
}
