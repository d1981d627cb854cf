// Package executor dispatches parsed statements against a catalog and runs
// the SELECT pipeline. Dispatch is a type switch over the closed statement
// set; each case is a terminal action against the catalog, a table or the
// evaluator.
package executor

import (
	"github.com/leengari/joydb/internal/catalog"
	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/parser/ast"
)

// RowFunc receives every SELECT result row as it is finalized, together
// with the result header, so a caller can observe results incrementally
// while the materialized result table is still being built.
type RowFunc func(row data.Row, header schema.Header)

// Executor runs statement batches against one catalog. The catalog handle
// is explicit; there is no ambient engine state.
type Executor struct {
	cat *catalog.Catalog
}

// New creates an executor bound to the given catalog
func New(cat *catalog.Catalog) *Executor {
	return &Executor{cat: cat}
}

// Catalog returns the catalog this executor mutates
func (e *Executor) Catalog() *catalog.Catalog {
	return e.cat
}

// Run executes the statements in order, mutating the catalog in place. The
// first failing statement stops the batch; earlier statements' effects
// persist (no rollback). The materialized table of the last SELECT in the
// batch is returned, nil when the batch holds none.
func (e *Executor) Run(stmts []ast.Statement, fn RowFunc) (*schema.Table, error) {
	var result *schema.Table

	for _, stmt := range stmts {
		var err error
		switch s := stmt.(type) {
		case *ast.CreateTableStatement:
			e.cat.Create(s.Def)
		case *ast.DropTableStatement:
			e.cat.Drop(s.Name)
		case *ast.AlterTableStatement:
			err = e.execAlter(s)
		case *ast.InsertStatement:
			err = e.execInsert(s)
		case *ast.UpdateStatement:
			err = e.execUpdate(s)
		case *ast.DeleteStatement:
			err = e.execDelete(s)
		case *ast.SelectStatement:
			result, err = e.execSelect(s, fn)
		}
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (e *Executor) execAlter(stmt *ast.AlterTableStatement) error {
	switch mode := stmt.Mode.(type) {
	case ast.RenameTo:
		return e.cat.Rename(stmt.Name, mode.NewName)
	case ast.AddColumn:
		table, err := e.cat.Get(stmt.Name)
		if err != nil {
			return err
		}
		table.AddColumn(mode.Column)
	}
	return nil
}
