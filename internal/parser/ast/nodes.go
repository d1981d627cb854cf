// Package ast defines the parsed statement and expression forms the executor
// consumes. Both are closed variant sets: every member carries an unexported
// marker method, so a type switch over them is exhaustive by construction
// and adding a kind is a compile-time concern, not runtime dispatch.
package ast

import (
	"fmt"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/schema"
)

// Statement is one executable statement
type Statement interface {
	statementNode()
}

// Expression is a value-producing tree: a literal, a column reference or a
// binary operation
type Expression interface {
	expressionNode()
	String() string
}

// CreateTableStatement carries the parsed table definition
type CreateTableStatement struct {
	Def schema.TableDef
}

// DropTableStatement removes a table by name
type DropTableStatement struct {
	Name string
}

// AlterMode is the closed set of ALTER TABLE actions
type AlterMode interface {
	alterMode()
}

// RenameTo renames the table
type RenameTo struct {
	NewName string
}

// AddColumn appends a column to the table's header
type AddColumn struct {
	Column schema.Column
}

func (RenameTo) alterMode()  {}
func (AddColumn) alterMode() {}

// AlterTableStatement applies one alteration to the named table
type AlterTableStatement struct {
	Name string
	Mode AlterMode
}

// InsertSource is the closed set of INSERT data sources
type InsertSource interface {
	insertSource()
}

// InsertValues supplies explicit literal rows
type InsertValues struct {
	Rows []data.Row
}

// InsertSelect supplies the materialized rows of a nested SELECT. The rows
// are appended verbatim, with no column-name remapping; they are assumed
// already shaped to the destination header.
type InsertSelect struct {
	Select *SelectStatement
}

// InsertDefaultValues is recognized but executed as a silent no-op
type InsertDefaultValues struct{}

func (InsertValues) insertSource()        {}
func (InsertSelect) insertSource()        {}
func (InsertDefaultValues) insertSource() {}

// InsertStatement inserts rows into the named table. Columns is nil when no
// column-name list was given.
type InsertStatement struct {
	Table   string
	Columns []string
	Source  InsertSource
}

// Assignment is one SET pair of an UPDATE statement
type Assignment struct {
	Column string
	Value  Expression
}

// UpdateStatement applies its assignments, in the order given, to every row
// the WHERE expression matches
type UpdateStatement struct {
	Table string
	Set   []Assignment
	Where Expression // nil means every row
}

// DeleteStatement removes matching rows, or every row when Where is nil
type DeleteStatement struct {
	Table string
	Where Expression
}

// Projection is the closed set of SELECT output specs
type Projection interface {
	projection()
}

// Asterisk passes the joined header and rows through unchanged
type Asterisk struct{}

// ExpressionList evaluates each expression per surviving row
type ExpressionList struct {
	Exprs []Expression
}

func (Asterisk) projection()       {}
func (ExpressionList) projection() {}

// SelectStatement is the three-stage pipeline input: cross join the From
// tables (an absent From list means one implicit zero-width row), filter by
// Where, then project.
type SelectStatement struct {
	Projection Projection
	From       []string
	Where      Expression // nil means no filtering
}

func (*CreateTableStatement) statementNode() {}
func (*DropTableStatement) statementNode()   {}
func (*AlterTableStatement) statementNode()  {}
func (*InsertStatement) statementNode()      {}
func (*UpdateStatement) statementNode()      {}
func (*DeleteStatement) statementNode()      {}
func (*SelectStatement) statementNode()      {}

// Literal is a fixed value
type Literal struct {
	Value data.Value
}

// ColumnRef references a column by name
type ColumnRef struct {
	Name string
}

// BinaryOp is the closed operator set
type BinaryOp int

const (
	OpEquals BinaryOp = iota
)

// BinaryExpr applies an operator to two sub-expressions
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*Literal) expressionNode()    {}
func (*ColumnRef) expressionNode()  {}
func (*BinaryExpr) expressionNode() {}

func (l *Literal) String() string {
	if l.Value.Kind == data.KindText {
		return fmt.Sprintf("%q", l.Value.Text)
	}
	return l.Value.String()
}

func (c *ColumnRef) String() string {
	return c.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s = %s", b.Left.String(), b.Right.String())
}
