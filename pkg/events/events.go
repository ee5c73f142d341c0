package events

import (
	"context"
	"time"
)

type Event interface {
	GetName() string
	GetDateTime() time.Time
	GetPayload() interface{}
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

type baseEvent struct {
	name     string
	dateTime time.Time
	payload  interface{}
}

// New builds an immutable event carrying an arbitrary payload.
func New(name string, payload interface{}) Event {
	return &baseEvent{
		name:     name,
		dateTime: time.Now(),
		payload:  payload,
	}
}

func (e *baseEvent) GetName() string          { return e.name }
func (e *baseEvent) GetDateTime() time.Time   { return e.dateTime }
func (e *baseEvent) GetPayload() interface{}  { return e.payload }
