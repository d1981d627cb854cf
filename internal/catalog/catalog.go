// Package catalog owns the mapping from table name to table: the engine's
// namespace and the single entry point for name resolution.
package catalog

import (
	"log/slog"
	"sort"

	"github.com/leengari/joydb/internal/domain/errors"
	"github.com/leengari/joydb/internal/domain/schema"
)

// Catalog maps table names to tables. At most one table exists per name at
// any time. The catalog is explicit, process-local state: every execution
// call receives a handle, there is no hidden singleton.
type Catalog struct {
	tables map[string]*schema.Table
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{tables: make(map[string]*schema.Table)}
}

// Create builds and registers a table from its definition. With IfNotExists
// set, creation is a no-op when the name is already present; without it an
// existing table of the same name is silently replaced and its rows
// discarded.
func (c *Catalog) Create(def schema.TableDef) {
	if def.IfNotExists {
		if _, ok := c.tables[def.Name]; ok {
			return
		}
	}
	c.tables[def.Name] = schema.NewTable(def)
	slog.Debug("table created", slog.String("table", def.Name))
}

// Drop removes the named table. Dropping an absent name is a silent no-op.
func (c *Catalog) Drop(name string) {
	delete(c.tables, name)
}

// Rename moves a table to a new name, overwriting any table already using
// that name. Renaming an absent table is an error.
func (c *Catalog) Rename(oldName, newName string) error {
	table, ok := c.tables[oldName]
	if !ok {
		return &errors.UnknownTableError{Name: oldName}
	}
	delete(c.tables, oldName)
	table.Name = newName
	c.tables[newName] = table
	slog.Debug("table renamed",
		slog.String("from", oldName),
		slog.String("to", newName),
	)
	return nil
}

// Get resolves a table by name, returning a typed error when absent
func (c *Catalog) Get(name string) (*schema.Table, error) {
	table, ok := c.tables[name]
	if !ok {
		return nil, &errors.UnknownTableError{Name: name}
	}
	return table, nil
}

// List returns the registered table names in sorted order
func (c *Catalog) List() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
