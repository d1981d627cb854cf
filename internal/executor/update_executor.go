package executor

import (
	"fmt"

	"github.com/leengari/joydb/internal/domain/errors"
	"github.com/leengari/joydb/internal/parser/ast"
)

func (e *Executor) execUpdate(stmt *ast.UpdateStatement) error {
	table, err := e.cat.Get(stmt.Table)
	if err != nil {
		return err
	}
	header := table.Header()

	// The key snapshot is taken up front: a row re-keyed under a later key
	// overwrites the row stored there, and the stale key is simply skipped.
	for _, key := range table.Keys() {
		row, ok := table.Row(key)
		if !ok {
			continue
		}
		if stmt.Where != nil {
			match, err := evalBool(stmt.Where, row, header, nil)
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}

		// Assignments apply in the order given against the row as updated
		// so far: SET a = b, b = 5 writes b's prior value into a before
		// overwriting b. Sequential, not snapshot, semantics.
		updated := row.Copy()
		for _, as := range stmt.Set {
			pos := header.Index(as.Column)
			if pos < 0 {
				return &errors.UnknownColumnError{Table: table.Name, Column: as.Column}
			}
			res, err := evalExpr(as.Value, updated, header, nil)
			if err != nil {
				return err
			}
			if res.kind != resultValue {
				return fmt.Errorf("table %q: SET %s: expression does not produce a value", table.Name, as.Column)
			}
			updated[pos] = res.v
		}
		if err := table.SetRow(key, updated); err != nil {
			return err
		}
	}
	return nil
}
