// Package engine is the top-level entry point: it parses a statement batch
// and executes it against an explicit catalog, emitting lifecycle events to
// registered observers along the way.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/joydb/internal/catalog"
	"github.com/leengari/joydb/internal/domain/schema"
	"github.com/leengari/joydb/internal/executor"
	"github.com/leengari/joydb/internal/parser"
)

// Engine binds a catalog to the parse-then-execute pipeline. The catalog is
// passed in at construction and never hidden behind a singleton; callers
// that want isolated namespaces create separate engines.
type Engine struct {
	cat       *catalog.Catalog
	observers []Observer
}

// New creates an engine over the given catalog
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:       cat,
		observers: make([]Observer, 0),
	}
}

// Catalog returns the engine's catalog handle
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Execute parses and runs one statement batch. A parse failure aborts the
// whole batch before any statement executes. Statements run in order; the
// first failing statement stops the batch and earlier effects persist. The
// last SELECT's materialized result table is returned (nil without one),
// and fn receives each result row as it is finalized.
func (e *Engine) Execute(sql string, fn executor.RowFunc) (*schema.Table, error) {
	batchID := uuid.New().String()

	e.notify(Event{Type: EventParseStart, BatchID: batchID, Data: sql})
	stmts, err := parser.Parse(sql)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventParseEnd, BatchID: batchID, Data: len(stmts)})

	e.notify(Event{Type: EventExecStart, BatchID: batchID})
	result, err := executor.New(e.cat).Run(stmts, fn)
	if err != nil {
		e.notify(Event{Type: EventExecError, BatchID: batchID, Data: err.Error()})
		return nil, fmt.Errorf("execution error: %w", err)
	}

	rows := 0
	if result != nil {
		rows = result.Len()
	}
	e.notify(Event{Type: EventExecEnd, BatchID: batchID, Data: rows})
	return result, nil
}

// AddObserver registers an observer for lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
