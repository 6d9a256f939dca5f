package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates auth lifecycle events.
type EventType string

const (
	EventLoginSucceeded EventType = "auth.login.succeeded"
	EventLoginFailed    EventType = "auth.login.failed"
	EventTokenRefreshed EventType = "auth.token.refreshed"
	EventLoggedOut      EventType = "auth.logged_out"
)

// Event describes a single auth lifecycle occurrence.
type Event struct {
	ID         string
	Type       EventType
	Username   string
	OccurredAt time.Time
	Metadata   map[string]string
}

// NewEvent stamps a fresh event for the given subject.
func NewEvent(eventType EventType, username string, metadata map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Username:   username,
		OccurredAt: time.Now(),
		Metadata:   metadata,
	}
}
