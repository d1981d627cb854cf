package errors

import "fmt"

// UnknownTableError reports a catalog lookup for a name that is not present.
// This is a recoverable, typed error: it stops the current statement batch
// but never terminates the process.
type UnknownTableError struct {
	Name string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q", e.Name)
}

// UnknownColumnError reports a column reference that resolves to no header
// position, in a single table or across a join's contributing tables.
type UnknownColumnError struct {
	Table  string // empty for joined or anonymous headers
	Column string
}

func (e *UnknownColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("unknown column %q", e.Column)
	}
	return fmt.Sprintf("unknown column %q in table %q", e.Column, e.Table)
}

// WidthMismatchError reports a row whose length disagrees with its table's
// header. Checked at every row-construction boundary: insert, cross join,
// projection.
type WidthMismatchError struct {
	Table string
	Want  int
	Got   int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("table %q: row width %d does not match header width %d", e.Table, e.Got, e.Want)
}

// PrimaryKeyTypeError reports a primary-key cell that cannot be coerced to
// an integer storage key. Policy: only Integer primary-key values are
// accepted; Null is accepted only where a surrogate has been synthesized.
type PrimaryKeyTypeError struct {
	Table  string
	Column string
	Value  string // rendered offending value
}

func (e *PrimaryKeyTypeError) Error() string {
	return fmt.Sprintf("table %q: primary key column %q requires an integer value, got %s", e.Table, e.Column, e.Value)
}

// ColumnCountError reports an INSERT whose supplied values disagree with its
// supplied column-name list.
type ColumnCountError struct {
	Table string
	Want  int
	Got   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("table %q: %d values supplied for %d named columns", e.Table, e.Got, e.Want)
}
