package schema

import (
	"log/slog"
	"sort"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/errors"
)

// NoPrimaryKey marks a table whose header declares no primary-key column
const NoPrimaryKey = -1

// Table owns one header and a primary-key-ordered row store. Rows are keyed
// by the integer value of the primary-key column when one is declared, and
// by an auto-incrementing surrogate otherwise. A table exclusively owns its
// header and rows; no row is ever shared with another table.
type Table struct {
	Name string

	header Header
	rows   map[int64]data.Row
	pk     int // header index of the primary-key column, NoPrimaryKey if none
	maxPK  int64
}

// NewTable builds a stored table from a CREATE TABLE definition. The column
// constraints are scanned once to locate the primary key; when several
// columns declare PRIMARY KEY the last one scanned wins.
func NewTable(def TableDef) *Table {
	t := &Table{
		Name:   def.Name,
		header: append(Header(nil), def.Columns...),
		rows:   make(map[int64]data.Row),
		pk:     NoPrimaryKey,
	}
	for i, col := range t.header {
		if col.IsPrimaryKey() {
			t.pk = i
		}
	}
	return t
}

// NewResultTable builds the transient, unnamed table a SELECT materializes
// into. It has no primary key; rows are keyed by insertion order.
func NewResultTable(header Header) *Table {
	return &Table{
		header: append(Header(nil), header...),
		rows:   make(map[int64]data.Row),
		pk:     NoPrimaryKey,
	}
}

// Header returns the table's ordered column definitions
func (t *Table) Header() Header {
	return t.header
}

// PrimaryKey returns the header index of the primary-key column and whether
// one is declared
func (t *Table) PrimaryKey() (int, bool) {
	return t.pk, t.pk != NoPrimaryKey
}

// Len returns the stored row count
func (t *Table) Len() int {
	return len(t.rows)
}

// HasRow reports whether a row is stored under the given key
func (t *Table) HasRow(key int64) bool {
	_, ok := t.rows[key]
	return ok
}

// Row returns the row stored under the given key
func (t *Table) Row(key int64) (data.Row, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// Keys returns the storage keys in ascending order
func (t *Table) Keys() []int64 {
	keys := make([]int64, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Rows returns copies of all rows in key order
func (t *Table) Rows() []data.Row {
	rows := make([]data.Row, 0, len(t.rows))
	for _, k := range t.Keys() {
		rows = append(rows, t.rows[k].Copy())
	}
	return rows
}

// AddColumn appends a column to the header and backfills Null into every
// existing row, keeping the width invariant. O(row count).
func (t *Table) AddColumn(col Column) {
	t.header = append(t.header, col)
	for k, row := range t.rows {
		t.rows[k] = append(row, data.Null)
	}
	slog.Debug("column added",
		slog.String("table", t.Name),
		slog.String("column", col.Name),
		slog.Int("width", len(t.header)),
	)
}

// AddColumns appends columns one by one
func (t *Table) AddColumns(cols []Column) {
	for _, col := range cols {
		t.AddColumn(col)
	}
}

// Insert stores the incoming rows. When columns is non-nil each incoming row
// is scattered into a full-width Null-filled row by column name, and a Null
// primary-key cell receives the next surrogate integer. When columns is nil
// each row must already be exactly header-width and is stored as given.
func (t *Table) Insert(rows []data.Row, columns []string) error {
	for _, incoming := range rows {
		row := incoming
		if columns != nil {
			if len(columns) != len(incoming) {
				return &errors.ColumnCountError{Table: t.Name, Want: len(columns), Got: len(incoming)}
			}
			row = data.NullRow(len(t.header))
			for i, name := range columns {
				pos := t.header.Index(name)
				if pos < 0 {
					return &errors.UnknownColumnError{Table: t.Name, Column: name}
				}
				row[pos] = incoming[i]
			}
			if t.pk != NoPrimaryKey && row[t.pk].IsNull() {
				row[t.pk] = data.Integer(t.maxPK + 1)
			}
		}
		if err := t.PushRow(row); err != nil {
			return err
		}
	}
	return nil
}

// PushRow stores one full-width row. With a declared primary key the storage
// key is the pk cell's integer value and any row already stored under that
// key is silently overwritten; last write wins. Without one the key is the
// next surrogate integer, so every push stores a new row.
func (t *Table) PushRow(row data.Row) error {
	if err := t.CheckWidth(row); err != nil {
		return err
	}
	if t.pk != NoPrimaryKey {
		cell := row[t.pk]
		if cell.Kind != data.KindInteger {
			return &errors.PrimaryKeyTypeError{
				Table:  t.Name,
				Column: t.header[t.pk].Name,
				Value:  cell.String(),
			}
		}
		key := cell.Int
		if key > t.maxPK {
			t.maxPK = key
		}
		t.rows[key] = row
		return nil
	}
	t.maxPK++
	t.rows[t.maxPK] = row
	return nil
}

// SetRow replaces the row stored under key. When the primary-key cell no
// longer derives the same key the row is re-keyed through PushRow, silently
// overwriting any row under the new key.
func (t *Table) SetRow(key int64, row data.Row) error {
	if err := t.CheckWidth(row); err != nil {
		return err
	}
	if t.pk != NoPrimaryKey {
		cell := row[t.pk]
		if cell.Kind != data.KindInteger || cell.Int != key {
			delete(t.rows, key)
			return t.PushRow(row)
		}
	}
	t.rows[key] = row
	return nil
}

// DeleteWhere removes every row the predicate matches. Matching keys are
// collected before any removal, so the predicate never observes partial
// deletion. Returns the number of rows removed.
func (t *Table) DeleteWhere(pred func(data.Row) (bool, error)) (int, error) {
	var matched []int64
	for _, key := range t.Keys() {
		ok, err := pred(t.rows[key])
		if err != nil {
			return 0, err
		}
		if ok {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		delete(t.rows, key)
	}
	if len(matched) > 0 {
		slog.Debug("rows deleted",
			slog.String("table", t.Name),
			slog.Int("count", len(matched)),
		)
	}
	return len(matched), nil
}

// Clear removes all rows, keeping the header and primary-key configuration
func (t *Table) Clear() {
	t.rows = make(map[int64]data.Row)
}

// CheckWidth validates one row against the header width
func (t *Table) CheckWidth(row data.Row) error {
	if len(row) != len(t.header) {
		return &errors.WidthMismatchError{Table: t.Name, Want: len(t.header), Got: len(row)}
	}
	return nil
}

// CheckIntegrity verifies the width invariant over every stored row. A
// violation means a construction bug, never normal operation.
func (t *Table) CheckIntegrity() error {
	for _, row := range t.rows {
		if err := t.CheckWidth(row); err != nil {
			return err
		}
	}
	return nil
}
