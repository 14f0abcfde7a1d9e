// Package columndesc detects columns whose descriptions diverge across
// schema files.
//
// The check collects every column occurrence from every file into one
// slice, sorts it globally by column name, and compares descriptions
// within each run of equal names. The global sort is the crux: grouping
// a per-file stream would never compare occurrences that live in
// different files.
package columndesc

import (
	"sort"

	"github.com/dbtcheck/dbtcheck/pkg/check"
)

// HookName is the registered identifier of this hook.
const HookName = "column-desc-are-same"

func init() {
	check.Register(check.HookDef{
		Name:        HookName,
		Description: "Check column descriptions are the same across schema files",
		Rationale: `The same column documented differently in two models confuses every
consumer of the docs site and usually means one of the descriptions is
stale. Keeping descriptions identical per column name makes the docs a
single source of truth.`,
	})
}

// Descriptor is one observed column occurrence.
// Corrected is reserved for a future auto-fix flow and is never
// populated by this hook.
type Descriptor struct {
	Column      string
	Description *string
	SourceFile  string
	Corrected   *string
}

// Bucket is one distinct description value within a conflict group and
// the number of occurrences carrying it. A nil Description is the
// undocumented bucket.
type Bucket struct {
	Description *string
	Count       int
}

// Conflict is a column name whose occurrences do not all agree on a
// description. Buckets appear in first-seen order within the sorted
// descriptor stream.
type Conflict struct {
	Column  string
	Buckets []Bucket
}

// Result holds the outcome of one run of the hook.
type Result struct {
	Status         check.Status
	ColumnsChecked int // descriptors examined after the ignore filter
	SkippedNoName  int // column entries dropped for having no name
	Conflicts      []Conflict
}

// Extract flattens schema records into one Descriptor per named column
// occurrence whose name is not in the ignore set. In-record column
// order is preserved. Entries without a name cannot be compared against
// anything and are skipped; the count of skipped entries is returned so
// the caller can surface it.
func Extract(records []check.SchemaRecord, ignore map[string]struct{}) ([]Descriptor, int) {
	var descs []Descriptor
	skipped := 0
	for _, rec := range records {
		for _, col := range rec.Columns {
			if col.Name == "" {
				skipped++
				continue
			}
			if _, ok := ignore[col.Name]; ok {
				continue
			}
			descs = append(descs, Descriptor{
				Column:      col.Name,
				Description: col.Description,
				SourceFile:  rec.SourceFile,
			})
		}
	}
	return descs, skipped
}

// Conflicts sorts the full descriptor slice by column name and reports
// every run of equal names that carries more than one distinct
// description value. Absent descriptions form their own bucket and are
// never equal to any string, including the empty string.
//
// The sort is stable so descriptors keep their extraction order within
// a group, which in turn makes bucket order deterministic.
func Conflicts(descs []Descriptor) []Conflict {
	sorted := make([]Descriptor, len(descs))
	copy(sorted, descs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Column < sorted[j].Column
	})

	var conflicts []Conflict
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].Column == sorted[start].Column {
			end++
		}
		if group := groupConflict(sorted[start:end]); group != nil {
			conflicts = append(conflicts, *group)
		}
		start = end
	}
	return conflicts
}

// Run executes the full extract-sort-group cycle.
func Run(records []check.SchemaRecord, ignore map[string]struct{}) Result {
	descs, skipped := Extract(records, ignore)
	conflicts := Conflicts(descs)

	status := check.StatusPass
	if len(conflicts) > 0 {
		status = check.StatusFail
	}
	return Result{
		Status:         status,
		ColumnsChecked: len(descs),
		SkippedNoName:  skipped,
		Conflicts:      conflicts,
	}
}

// descKey distinguishes the absent description from every real string.
type descKey struct {
	present bool
	text    string
}

func keyOf(d *string) descKey {
	if d == nil {
		return descKey{}
	}
	return descKey{present: true, text: *d}
}

// groupConflict counts description values within one run of equal
// column names. Returns nil when all occurrences agree.
func groupConflict(group []Descriptor) *Conflict {
	counts := make(map[descKey]int, len(group))
	order := make([]descKey, 0, 2)
	byKey := make(map[descKey]*string, 2)

	for _, d := range group {
		k := keyOf(d.Description)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			byKey[k] = d.Description
		}
		counts[k]++
	}
	if len(counts) <= 1 {
		return nil
	}

	buckets := make([]Bucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, Bucket{Description: byKey[k], Count: counts[k]})
	}
	return &Conflict{Column: group[0].Column, Buckets: buckets}
}
