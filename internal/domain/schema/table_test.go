package schema_test

import (
	stderrors "errors"
	"testing"

	"github.com/leengari/joydb/internal/domain/data"
	"github.com/leengari/joydb/internal/domain/errors"
	"github.com/leengari/joydb/internal/domain/schema"
)

// Helper to create a two-column table with an integer primary key
func newFooTable(t *testing.T) *schema.Table {
	t.Helper()
	return schema.NewTable(schema.TableDef{
		Name: "Foo",
		Columns: []schema.Column{
			{Name: "Id", Type: schema.ColumnTypeInteger, Constraints: []schema.Constraint{schema.ConstraintPrimaryKey}},
			{Name: "Name", Type: schema.ColumnTypeText},
		},
	})
}

func TestLastPrimaryKeyWins(t *testing.T) {
	table := schema.NewTable(schema.TableDef{
		Name: "Multi",
		Columns: []schema.Column{
			{Name: "A", Constraints: []schema.Constraint{schema.ConstraintPrimaryKey}},
			{Name: "B"},
			{Name: "C", Constraints: []schema.Constraint{schema.ConstraintPrimaryKey}},
		},
	})

	pk, ok := table.PrimaryKey()
	if !ok {
		t.Fatal("expected a primary key")
	}
	if pk != 2 {
		t.Errorf("expected the last declared primary key (index 2), got %d", pk)
	}
}

func TestAddColumnBackfillsNull(t *testing.T) {
	table := newFooTable(t)
	if err := table.PushRow(data.Row{data.Integer(1), data.Text("Bar1")}); err != nil {
		t.Fatalf("PushRow failed: %v", err)
	}

	table.AddColumn(schema.Column{Name: "Extra", Type: schema.ColumnTypeText})

	if len(table.Header()) != 3 {
		t.Fatalf("expected header width 3, got %d", len(table.Header()))
	}
	row, ok := table.Row(1)
	if !ok {
		t.Fatal("row 1 missing")
	}
	if len(row) != 3 {
		t.Fatalf("expected row width 3, got %d", len(row))
	}
	if !row[2].IsNull() {
		t.Errorf("backfilled cell should be Null, got %v", row[2])
	}
	if err := table.CheckIntegrity(); err != nil {
		t.Errorf("integrity check failed: %v", err)
	}
}

func TestPushRowLastWriteWins(t *testing.T) {
	table := newFooTable(t)
	if err := table.PushRow(data.Row{data.Integer(1), data.Text("old")}); err != nil {
		t.Fatalf("PushRow failed: %v", err)
	}
	if err := table.PushRow(data.Row{data.Integer(1), data.Text("new")}); err != nil {
		t.Fatalf("duplicate key should not error: %v", err)
	}

	if table.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", table.Len())
	}
	row, _ := table.Row(1)
	if !row[1].Equal(data.Text("new")) {
		t.Errorf("expected last write to win, got %v", row[1])
	}
}

func TestSurrogateKeysForDeclaredPK(t *testing.T) {
	table := newFooTable(t)

	// Insert with a column list that omits the primary key
	err := table.Insert([]data.Row{
		{data.Text("Bar1")},
		{data.Text("Bar2")},
	}, []string{"Name"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	keys := table.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(keys))
	}
	if keys[0] != 1 || keys[1] != 2 {
		t.Errorf("expected strictly increasing surrogate keys 1,2, got %v", keys)
	}
	row, _ := table.Row(2)
	if !row[0].Equal(data.Integer(2)) {
		t.Errorf("surrogate key should be written into the pk cell, got %v", row[0])
	}
}

func TestSurrogateKeysWithoutDeclaredPK(t *testing.T) {
	table := schema.NewTable(schema.TableDef{
		Name:    "NoPK",
		Columns: []schema.Column{{Name: "V", Type: schema.ColumnTypeInteger}},
	})

	for i := 0; i < 3; i++ {
		if err := table.PushRow(data.Row{data.Integer(7)}); err != nil {
			t.Fatalf("PushRow failed: %v", err)
		}
	}
	if table.Len() != 3 {
		t.Errorf("identical rows must all be kept under distinct surrogates, got %d", table.Len())
	}
}

func TestInsertScattersByColumnName(t *testing.T) {
	table := newFooTable(t)
	err := table.Insert([]data.Row{
		{data.Text("Bar1"), data.Integer(5)},
	}, []string{"Name", "Id"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	row, ok := table.Row(5)
	if !ok {
		t.Fatal("expected row under key 5")
	}
	if !row[0].Equal(data.Integer(5)) || !row[1].Equal(data.Text("Bar1")) {
		t.Errorf("values not scattered to named positions: %v", row)
	}
}

func TestInsertRejectsUnknownColumn(t *testing.T) {
	table := newFooTable(t)
	err := table.Insert([]data.Row{{data.Integer(1)}}, []string{"Nope"})

	var colErr *errors.UnknownColumnError
	if !stderrors.As(err, &colErr) {
		t.Fatalf("expected UnknownColumnError, got %v", err)
	}
}

func TestPushRowRejectsWidthMismatch(t *testing.T) {
	table := newFooTable(t)
	err := table.PushRow(data.Row{data.Integer(1)})

	var widthErr *errors.WidthMismatchError
	if !stderrors.As(err, &widthErr) {
		t.Fatalf("expected WidthMismatchError, got %v", err)
	}
}

func TestPushRowRejectsNonIntegerPrimaryKey(t *testing.T) {
	table := newFooTable(t)

	for _, bad := range []data.Value{data.Text("x"), data.Real(1.5), data.Null} {
		err := table.PushRow(data.Row{bad, data.Text("Bar")})
		var pkErr *errors.PrimaryKeyTypeError
		if !stderrors.As(err, &pkErr) {
			t.Errorf("pk value %v: expected PrimaryKeyTypeError, got %v", bad, err)
		}
	}
}

func TestDeleteWhereCollectsBeforeRemoving(t *testing.T) {
	table := newFooTable(t)
	for i := int64(1); i <= 4; i++ {
		if err := table.PushRow(data.Row{data.Integer(i), data.Text("Bar")}); err != nil {
			t.Fatalf("PushRow failed: %v", err)
		}
	}

	seen := 0
	deleted, err := table.DeleteWhere(func(row data.Row) (bool, error) {
		seen++
		return row[0].Int%2 == 0, nil
	})
	if err != nil {
		t.Fatalf("DeleteWhere failed: %v", err)
	}
	if seen != 4 {
		t.Errorf("predicate should observe all 4 rows before any removal, saw %d", seen)
	}
	if deleted != 2 || table.Len() != 2 {
		t.Errorf("expected 2 deleted / 2 remaining, got %d / %d", deleted, table.Len())
	}
}

func TestClearKeepsHeaderAndPK(t *testing.T) {
	table := newFooTable(t)
	if err := table.PushRow(data.Row{data.Integer(1), data.Text("Bar")}); err != nil {
		t.Fatalf("PushRow failed: %v", err)
	}

	table.Clear()

	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d rows", table.Len())
	}
	if len(table.Header()) != 2 {
		t.Errorf("header should survive Clear, got width %d", len(table.Header()))
	}
	if _, ok := table.PrimaryKey(); !ok {
		t.Error("primary-key configuration should survive Clear")
	}
}

func TestSetRowReKeysOnPrimaryKeyChange(t *testing.T) {
	table := newFooTable(t)
	if err := table.PushRow(data.Row{data.Integer(1), data.Text("one")}); err != nil {
		t.Fatalf("PushRow failed: %v", err)
	}
	if err := table.PushRow(data.Row{data.Integer(2), data.Text("two")}); err != nil {
		t.Fatalf("PushRow failed: %v", err)
	}

	// moving row 1 onto key 2 silently overwrites the row stored there
	if err := table.SetRow(1, data.Row{data.Integer(2), data.Text("moved")}); err != nil {
		t.Fatalf("SetRow failed: %v", err)
	}

	if table.HasRow(1) {
		t.Error("old key should be gone after re-keying")
	}
	row, _ := table.Row(2)
	if !row[1].Equal(data.Text("moved")) {
		t.Errorf("expected overwrite under new key, got %v", row[1])
	}
}
