package schema

// ColumnType is the declared type of a column. Declared types are
// informational only; the engine never coerces or enforces them.
type ColumnType string

const (
	ColumnTypeInteger ColumnType = "INTEGER"
	ColumnTypeText    ColumnType = "TEXT"
)

// Constraint is a column constraint kind. The set is closed; PrimaryKey is
// the only member today.
type Constraint int

const (
	ConstraintPrimaryKey Constraint = iota
)

// Column describes one header entry: a name unique within its header, an
// optional declared type (empty when undeclared) and an ordered constraint
// list.
type Column struct {
	Name        string
	Type        ColumnType
	Constraints []Constraint
}

// IsPrimaryKey reports whether the column carries the PrimaryKey constraint
func (c Column) IsPrimaryKey() bool {
	for _, con := range c.Constraints {
		if con == ConstraintPrimaryKey {
			return true
		}
	}
	return false
}

// Header is the ordered column sequence defining a row's shape. Order is
// significant and fixed once a table is constructed; growth is append-only.
type Header []Column

// Index returns the position of the named column, or -1 when absent
func (h Header) Index(name string) int {
	for i, col := range h {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the definition of the named column, or nil when absent
func (h Header) Column(name string) *Column {
	if i := h.Index(name); i >= 0 {
		return &h[i]
	}
	return nil
}

// Names returns the column names in header order
func (h Header) Names() []string {
	names := make([]string, len(h))
	for i, col := range h {
		names[i] = col.Name
	}
	return names
}

// TableDef is the parsed definition a CREATE TABLE statement carries
type TableDef struct {
	Name        string
	IfNotExists bool
	Columns     []Column
}
