package engine

import "time"

// EventType names the lifecycle phases of one statement batch
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventExecError  EventType = "exec_error"
)

// Event is one lifecycle event. BatchID ties the events of a single
// Execute call together.
type Event struct {
	Type      EventType
	BatchID   string
	Timestamp time.Time
	Data      any // phase-specific: source text, statement count, row count, error
}

// Observer receives events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
