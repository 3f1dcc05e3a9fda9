package core

import (
	"fmt"
	"time"
)

// EventType represents the type of change in the notes root.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note file.
type Event struct {
	Type      EventType
	Title     string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @ %s", e.Type, e.Title, time.Unix(e.Timestamp, 0).Format(time.RFC3339))
}
