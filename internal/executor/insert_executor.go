package executor

import (
	"log/slog"

	"github.com/leengari/joydb/internal/parser/ast"
)

func (e *Executor) execInsert(stmt *ast.InsertStatement) error {
	table, err := e.cat.Get(stmt.Table)
	if err != nil {
		return err
	}

	switch src := stmt.Source.(type) {
	case ast.InsertValues:
		if err := table.Insert(src.Rows, stmt.Columns); err != nil {
			return err
		}
		slog.Debug("rows inserted",
			slog.String("table", table.Name),
			slog.Int("count", len(src.Rows)),
		)

	case ast.InsertSelect:
		// The sub-select materializes first, then its rows are appended
		// verbatim: no column-name remapping, rows are assumed already
		// shaped to the destination header.
		result, err := e.execSelect(src.Select, nil)
		if err != nil {
			return err
		}
		for _, row := range result.Rows() {
			if err := table.PushRow(row); err != nil {
				return err
			}
		}
		slog.Debug("rows inserted from select",
			slog.String("table", table.Name),
			slog.Int("count", result.Len()),
		)

	case ast.InsertDefaultValues:
		// recognized but not implemented; a silent no-op
	}
	return nil
}
