package executor

import (
	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/errors"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/parser/ast"
)

// The evaluator is a pure function of (expression, row, header, optional
// contributing tables). With a table list the row is a joined row and
// column references resolve by scanning each contributing table's header
// in listed order, accumulating a positional offset. Without one the row
// belongs to a single header.

type resultKind int

const (
	resultValue resultKind = iota
	resultBool
)

// exprResult is the evaluator's tagged outcome: a plain value or a boolean
type exprResult struct {
	kind resultKind
	b    bool
	v    data.Value
}

func (r exprResult) equal(o exprResult) bool {
	if r.kind != o.kind {
		return false
	}
	if r.kind == resultBool {
		return r.b == o.b
	}
	return r.v.Equal(o.v)
}

func evalExpr(expr ast.Expression, row data.Row, header schema.Header, tables []*schema.Table) (exprResult, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return exprResult{kind: resultValue, v: e.Value}, nil

	case *ast.ColumnRef:
		pos, err := resolveColumn(e.Name, header, tables)
		if err != nil {
			return exprResult{}, err
		}
		return exprResult{kind: resultValue, v: row[pos]}, nil

	case *ast.BinaryExpr:
		left, err := evalExpr(e.Left, row, header, tables)
		if err != nil {
			return exprResult{}, err
		}
		right, err := evalExpr(e.Right, row, header, tables)
		if err != nil {
			return exprResult{}, err
		}
		// OpEquals is the only operator; equality is structural and
		// type-sensitive, so Integer(1) = Real(1.0) is false
		return exprResult{kind: resultBool, b: left.equal(right)}, nil
	}
	return exprResult{}, &errors.UnknownColumnError{Column: expr.String()}
}

// evalBool evaluates an expression as a predicate. A plain value outcome is
// treated as false rather than a type error, so a WHERE clause that is not
// a comparison filters every row out.
func evalBool(expr ast.Expression, row data.Row, header schema.Header, tables []*schema.Table) (bool, error) {
	res, err := evalExpr(expr, row, header, tables)
	if err != nil {
		return false, err
	}
	if res.kind != resultBool {
		return false, nil
	}
	return res.b, nil
}

// resolveColumn maps a name to a position in the possibly joined header
func resolveColumn(name string, header schema.Header, tables []*schema.Table) (int, error) {
	if tables == nil {
		if i := header.Index(name); i >= 0 {
			return i, nil
		}
		return 0, &errors.UnknownColumnError{Column: name}
	}
	offset := 0
	for _, t := range tables {
		if i := t.Header().Index(name); i >= 0 {
			return offset + i, nil
		}
		offset += len(t.Header())
	}
	return 0, &errors.UnknownColumnError{Column: name}
}

// projectionColumn is the evaluator's header mode: it derives the output
// column definition for one projection expression. A bare column reference
// inherits the source column's definition; any other expression is named by
// its SQL text with no declared type.
func projectionColumn(expr ast.Expression, header schema.Header, tables []*schema.Table) (schema.Column, error) {
	ref, ok := expr.(*ast.ColumnRef)
	if !ok {
		return schema.Column{Name: expr.String()}, nil
	}
	if tables == nil {
		if col := header.Column(ref.Name); col != nil {
			return *col, nil
		}
		return schema.Column{}, &errors.UnknownColumnError{Column: ref.Name}
	}
	for _, t := range tables {
		if col := t.Header().Column(ref.Name); col != nil {
			return *col, nil
		}
	}
	return schema.Column{}, &errors.UnknownColumnError{Column: ref.Name}
}
