package executor

import (
	stderrors "errors"
	"testing"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/errors"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/parser/ast"
)

func lit(v data.Value) ast.Expression { return &ast.Literal{Value: v} }
func col(name string) ast.Expression  { return &ast.ColumnRef{Name: name} }
func eq(l, r ast.Expression) ast.Expression {
	return &ast.BinaryExpr{Op: ast.OpEquals, Left: l, Right: r}
}

var testHeader = schema.Header{
	{Name: "Id", Type: schema.ColumnTypeInteger},
	{Name: "Name", Type: schema.ColumnTypeText},
}

func TestEvalLiteralPassesThrough(t *testing.T) {
	res, err := evalExpr(lit(data.Integer(42)), data.Row{}, nil, nil)
	if err != nil {
		t.Fatalf("evalExpr failed: %v", err)
	}
	if res.kind != resultValue || !res.v.Equal(data.Integer(42)) {
		t.Errorf("expected Value(42), got %+v", res)
	}
}

func TestEvalColumnRef(t *testing.T) {
	row := data.Row{data.Integer(7), data.Text("Bar")}
	res, err := evalExpr(col("Name"), row, testHeader, nil)
	if err != nil {
		t.Fatalf("evalExpr failed: %v", err)
	}
	if !res.v.Equal(data.Text("Bar")) {
		t.Errorf("expected Bar, got %v", res.v)
	}
}

func TestEvalUnknownColumn(t *testing.T) {
	_, err := evalExpr(col("Ghost"), data.Row{}, testHeader, nil)
	var colErr *errors.UnknownColumnError
	if !stderrors.As(err, &colErr) {
		t.Fatalf("expected UnknownColumnError, got %v", err)
	}
}

func TestEvalEqualsIsTypeSensitive(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expression
		want bool
	}{
		{"integer equals integer", eq(lit(data.Integer(1)), lit(data.Integer(1))), true},
		{"integer never equals real", eq(lit(data.Integer(1)), lit(data.Real(1.0))), false},
		{"null equals null", eq(lit(data.Null), lit(data.Null)), true},
		{"text comparison", eq(lit(data.Text("a")), lit(data.Text("b"))), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := evalBool(tc.expr, data.Row{}, nil, nil)
			if err != nil {
				t.Fatalf("evalBool failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvalBoolTreatsPlainValueAsFalse(t *testing.T) {
	// a WHERE clause that is not a comparison filters everything out
	got, err := evalBool(lit(data.Integer(1)), data.Row{}, nil, nil)
	if err != nil {
		t.Fatalf("evalBool failed: %v", err)
	}
	if got {
		t.Error("a plain value must evaluate as false, not as a type error")
	}
}

func TestResolveAcrossJoinedTables(t *testing.T) {
	left := schema.NewTable(schema.TableDef{
		Name: "L",
		Columns: []schema.Column{
			{Name: "Id", Type: schema.ColumnTypeInteger},
			{Name: "Name", Type: schema.ColumnTypeText},
		},
	})
	right := schema.NewTable(schema.TableDef{
		Name: "R",
		Columns: []schema.Column{
			{Name: "Score", Type: schema.ColumnTypeInteger},
		},
	})
	tables := []*schema.Table{left, right}
	joined := data.Row{data.Integer(1), data.Text("Bar"), data.Integer(9)}

	// Score lives in the second table; its position carries the offset of
	// the first table's header
	res, err := evalExpr(col("Score"), joined, nil, tables)
	if err != nil {
		t.Fatalf("evalExpr failed: %v", err)
	}
	if !res.v.Equal(data.Integer(9)) {
		t.Errorf("expected 9, got %v", res.v)
	}

	// first match in listed order wins
	res, err = evalExpr(col("Id"), joined, nil, tables)
	if err != nil {
		t.Fatalf("evalExpr failed: %v", err)
	}
	if !res.v.Equal(data.Integer(1)) {
		t.Errorf("expected 1, got %v", res.v)
	}
}

func TestProjectionColumnInheritsDefinition(t *testing.T) {
	table := schema.NewTable(schema.TableDef{
		Name: "T",
		Columns: []schema.Column{
			{Name: "Id", Type: schema.ColumnTypeInteger, Constraints: []schema.Constraint{schema.ConstraintPrimaryKey}},
		},
	})

	got, err := projectionColumn(col("Id"), nil, []*schema.Table{table})
	if err != nil {
		t.Fatalf("projectionColumn failed: %v", err)
	}
	if got.Name != "Id" || got.Type != schema.ColumnTypeInteger {
		t.Errorf("column reference should inherit the source definition, got %+v", got)
	}
}

func TestProjectionColumnForExpression(t *testing.T) {
	got, err := projectionColumn(lit(data.Integer(5)), nil, nil)
	if err != nil {
		t.Fatalf("projectionColumn failed: %v", err)
	}
	if got.Name != "5" {
		t.Errorf("non-column expression should be named by its SQL text, got %q", got.Name)
	}
	if got.Type != "" {
		t.Errorf("non-column expression should carry no declared type, got %q", got.Type)
	}
}
