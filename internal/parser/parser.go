// Package parser turns SQL source text into the ast statement list the
// executor consumes. Malformed input yields a diagnostic error and no
// statements; the engine then executes nothing from that batch.
package parser

import (
	"fmt"
	"strings"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/parser/ast"
)

// Parse compiles a statement batch. It either returns every statement in
// source order or a single diagnostic error for the whole batch.
func Parse(input string) ([]ast.Statement, error) {
	script, err := sqlParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	stmts := make([]ast.Statement, 0, len(script.Statements))
	for _, gs := range script.Statements {
		stmt, err := lowerStatement(gs)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func lowerStatement(gs *gramStatement) (ast.Statement, error) {
	switch {
	case gs.Create != nil:
		return lowerCreate(gs.Create), nil
	case gs.Alter != nil:
		return lowerAlter(gs.Alter), nil
	case gs.Drop != nil:
		return &ast.DropTableStatement{Name: gs.Drop.Name}, nil
	case gs.Insert != nil:
		return lowerInsert(gs.Insert)
	case gs.Update != nil:
		return lowerUpdate(gs.Update)
	case gs.Delete != nil:
		return lowerDelete(gs.Delete)
	case gs.Select != nil:
		sel, err := lowerSelect(gs.Select)
		if err != nil {
			return nil, err
		}
		return sel, nil
	}
	return nil, fmt.Errorf("parse error: empty statement")
}

func lowerCreate(g *gramCreateTable) *ast.CreateTableStatement {
	def := schema.TableDef{
		Name:        g.Name,
		IfNotExists: g.IfNotExists,
	}
	for _, col := range g.Columns {
		def.Columns = append(def.Columns, lowerColumn(col))
	}
	return &ast.CreateTableStatement{Def: def}
}

func lowerColumn(g *gramColumn) schema.Column {
	col := schema.Column{Name: g.Name}
	if g.Type != nil {
		col.Type = normalizeType(*g.Type)
	}
	if g.PrimaryKey {
		col.Constraints = append(col.Constraints, schema.ConstraintPrimaryKey)
	}
	return col
}

// normalizeType maps the keyword as written to its canonical spelling,
// since keywords match case-insensitively
func normalizeType(keyword string) schema.ColumnType {
	if strings.EqualFold(keyword, "TEXT") {
		return schema.ColumnTypeText
	}
	return schema.ColumnTypeInteger
}

func lowerAlter(g *gramAlterTable) *ast.AlterTableStatement {
	stmt := &ast.AlterTableStatement{Name: g.Name}
	if g.RenameTo != nil {
		stmt.Mode = ast.RenameTo{NewName: *g.RenameTo}
	} else {
		stmt.Mode = ast.AddColumn{Column: lowerColumn(g.Add)}
	}
	return stmt
}

func lowerInsert(g *gramInsert) (*ast.InsertStatement, error) {
	stmt := &ast.InsertStatement{Table: g.Table, Columns: g.Columns}
	switch {
	case g.Select != nil:
		sel, err := lowerSelect(g.Select)
		if err != nil {
			return nil, err
		}
		stmt.Source = ast.InsertSelect{Select: sel}
	case g.Defaults:
		stmt.Source = ast.InsertDefaultValues{}
	default:
		rows := make([]data.Row, 0, len(g.Rows))
		for _, tuple := range g.Rows {
			row := make(data.Row, 0, len(tuple.Values))
			for _, op := range tuple.Values {
				if op.Column != nil {
					return nil, fmt.Errorf("parse error: INSERT values must be literals, got identifier %q", *op.Column)
				}
				row = append(row, lowerLiteral(op))
			}
			rows = append(rows, row)
		}
		stmt.Source = ast.InsertValues{Rows: rows}
	}
	return stmt, nil
}

func lowerUpdate(g *gramUpdate) (*ast.UpdateStatement, error) {
	stmt := &ast.UpdateStatement{Table: g.Table}
	for _, as := range g.Set {
		value, err := lowerExpr(as.Value)
		if err != nil {
			return nil, err
		}
		stmt.Set = append(stmt.Set, ast.Assignment{Column: as.Column, Value: value})
	}
	where, err := lowerOptionalExpr(g.Where)
	if err != nil {
		return nil, err
	}
	stmt.Where = where
	return stmt, nil
}

func lowerDelete(g *gramDelete) (*ast.DeleteStatement, error) {
	where, err := lowerOptionalExpr(g.Where)
	if err != nil {
		return nil, err
	}
	return &ast.DeleteStatement{Table: g.Table, Where: where}, nil
}

func lowerSelect(g *gramSelect) (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{From: g.From}
	if g.Star {
		stmt.Projection = ast.Asterisk{}
	} else {
		exprs := make([]ast.Expression, 0, len(g.Exprs))
		for _, ge := range g.Exprs {
			expr, err := lowerExpr(ge)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		stmt.Projection = ast.ExpressionList{Exprs: exprs}
	}
	where, err := lowerOptionalExpr(g.Where)
	if err != nil {
		return nil, err
	}
	stmt.Where = where
	return stmt, nil
}

func lowerOptionalExpr(g *gramExpr) (ast.Expression, error) {
	if g == nil {
		return nil, nil
	}
	return lowerExpr(g)
}

func lowerExpr(g *gramExpr) (ast.Expression, error) {
	left := lowerOperand(g.Left)
	if g.Right == nil {
		return left, nil
	}
	return &ast.BinaryExpr{
		Op:    ast.OpEquals,
		Left:  left,
		Right: lowerOperand(g.Right),
	}, nil
}

func lowerOperand(g *gramOperand) ast.Expression {
	if g.Column != nil {
		return &ast.ColumnRef{Name: *g.Column}
	}
	return &ast.Literal{Value: lowerLiteral(g)}
}

func lowerLiteral(g *gramOperand) data.Value {
	switch {
	case g.Real != nil:
		return data.Real(*g.Real)
	case g.Int != nil:
		return data.Integer(*g.Int)
	case g.Str != nil:
		return data.Text(unquote(*g.Str))
	default:
		return data.Null
	}
}

// unquote strips the matching quote pair the lexer kept
func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
