package executor

import (
	"log/slog"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/parser/ast"
)

// execSelect runs the three-stage pipeline: cross join the source tables,
// filter by the WHERE expression, then project. The finalized result table
// is returned and every result row additionally streams through fn as it is
// produced.
func (e *Executor) execSelect(stmt *ast.SelectStatement, fn RowFunc) (*schema.Table, error) {
	// Stage 1: input generation. With no source table a single zero-width
	// row seeds a source-free projection (a literal-only SELECT).
	var (
		tables []*schema.Table
		header schema.Header
		rows   []data.Row
	)
	if len(stmt.From) == 0 {
		rows = []data.Row{{}}
	} else {
		for _, name := range stmt.From {
			table, err := e.cat.Get(name)
			if err != nil {
				return nil, err
			}
			tables = append(tables, table)
		}
		header, rows = crossJoin(tables)
	}

	// Stage 2: filtering. Rows whose predicate is not a true boolean are
	// discarded, including the permissive false-on-non-boolean case.
	if stmt.Where != nil {
		kept := make([]data.Row, 0, len(rows))
		for _, row := range rows {
			match, err := evalBool(stmt.Where, row, header, tables)
			if err != nil {
				return nil, err
			}
			if match {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	// Stage 3: projection
	result, err := e.project(stmt.Projection, header, rows, tables, fn)
	if err != nil {
		return nil, err
	}
	slog.Debug("select finished",
		slog.Int("sources", len(tables)),
		slog.Int("rows", result.Len()),
	)
	return result, nil
}

func (e *Executor) project(proj ast.Projection, header schema.Header, rows []data.Row, tables []*schema.Table, fn RowFunc) (*schema.Table, error) {
	switch p := proj.(type) {
	case ast.Asterisk:
		result := schema.NewResultTable(header)
		for _, row := range rows {
			out := row.Copy()
			if err := result.PushRow(out); err != nil {
				return nil, err
			}
			if fn != nil {
				fn(out, result.Header())
			}
		}
		return result, nil

	case ast.ExpressionList:
		var result *schema.Table
		for _, row := range rows {
			if result == nil {
				// The output header derives once, from the first row
				// processed, via the evaluator's header mode.
				outHeader := make(schema.Header, 0, len(p.Exprs))
				for _, expr := range p.Exprs {
					col, err := projectionColumn(expr, header, tables)
					if err != nil {
						return nil, err
					}
					outHeader = append(outHeader, col)
				}
				result = schema.NewResultTable(outHeader)
			}
			out := make(data.Row, 0, len(p.Exprs))
			for _, expr := range p.Exprs {
				res, err := evalExpr(expr, row, header, tables)
				if err != nil {
					return nil, err
				}
				cell := res.v
				if res.kind == resultBool {
					// a comparison projected as a value surfaces as an
					// integer, 1 for true and 0 for false
					cell = data.Integer(0)
					if res.b {
						cell = data.Integer(1)
					}
				}
				out = append(out, cell)
			}
			if err := result.PushRow(out); err != nil {
				return nil, err
			}
			if fn != nil {
				fn(out, result.Header())
			}
		}
		if result == nil {
			result = schema.NewResultTable(schema.Header{})
		}
		return result, nil
	}
	return schema.NewResultTable(schema.Header{}), nil
}

// crossJoin builds the left-to-right Cartesian product of the source
// tables: a full nested loop with no predicate pushdown or join-order
// optimization. The joined header concatenates the source headers in
// listed order; every joined row is a fresh copy, never a view into a
// source table.
func crossJoin(tables []*schema.Table) (schema.Header, []data.Row) {
	header := schema.Header{}
	rows := []data.Row{{}}
	for _, table := range tables {
		header = append(header, table.Header()...)
		next := make([]data.Row, 0, len(rows)*table.Len())
		for _, left := range rows {
			for _, right := range table.Rows() {
				next = append(next, left.Concat(right))
			}
		}
		rows = next
	}
	return header, rows
}
