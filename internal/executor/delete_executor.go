package executor

import (
	"log/slog"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/parser/ast"
)

func (e *Executor) execDelete(stmt *ast.DeleteStatement) error {
	table, err := e.cat.Get(stmt.Table)
	if err != nil {
		return err
	}

	// No WHERE clause clears the whole table
	if stmt.Where == nil {
		table.Clear()
		slog.Debug("table cleared", slog.String("table", table.Name))
		return nil
	}

	header := table.Header()
	deleted, err := table.DeleteWhere(func(row data.Row) (bool, error) {
		return evalBool(stmt.Where, row, header, nil)
	})
	if err != nil {
		return err
	}
	slog.Debug("delete applied",
		slog.String("table", table.Name),
		slog.Int("deleted", deleted),
	)
	return nil
}
