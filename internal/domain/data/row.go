package data

// Row is an ordered sequence of cell values, one per header column.
// Column identity is positional: Row[i] belongs to header column i.
type Row []Value

// Copy creates an independent copy of the row to prevent aliasing
// between tables. Result rows are always fresh copies, never views
// into source tables.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Concat builds a new row holding this row's cells followed by the
// other row's cells. Used by the cross-join stage.
func (r Row) Concat(o Row) Row {
	out := make(Row, 0, len(r)+len(o))
	out = append(out, r...)
	out = append(out, o...)
	return out
}

// NullRow returns a row of the given width with every cell Null
func NullRow(width int) Row {
	return make(Row, width)
}
