package check

// SchemaColumn is one column declaration inside a schema file.
// A nil Description means the column is undocumented. This is distinct
// from an empty string: hooks must never treat the two as equal.
type SchemaColumn struct {
	Name        string
	Description *string
}

// SchemaRecord is the column documentation of a single model, tagged
// with the file it came from. One schema file can produce several
// records. Column order matches the order in the file.
type SchemaRecord struct {
	SourceFile  string
	ModelName   string
	Description *string
	Columns     []SchemaColumn
}

// Status is the overall outcome of a hook run.
type Status int

const (
	// StatusPass means no findings.
	StatusPass Status = 0
	// StatusFail means at least one finding, or input loading failed.
	StatusFail Status = 1
)

// Int returns the status as a process exit code.
func (s Status) Int() int { return int(s) }

func (s Status) String() string {
	if s == StatusPass {
		return "pass"
	}
	return "fail"
}
