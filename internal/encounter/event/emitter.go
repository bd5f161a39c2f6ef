package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store defines the interface for persisting events.
type Store interface {
	AppendEvent(ctx context.Context, evt Event) (Event, error)
}

// Notifier receives a signal after any command mutates encounter state, so
// an attached surface can re-query and re-render. Implementations must not
// block.
type Notifier interface {
	StateChanged()
}

// Emitter appends encounter events to the journal and signals notifiers.
type Emitter struct {
	store     Store
	notifiers []Notifier
	now       func() time.Time
}

// NewEmitter creates a new event emitter. A nil store disables journaling
// but notifiers still fire.
func NewEmitter(store Store, notifiers ...Notifier) *Emitter {
	return &Emitter{
		store:     store,
		notifiers: notifiers,
		now:       time.Now,
	}
}

// EmitInput describes the input for emitting an event.
type EmitInput struct {
	Type         Type
	Actor        string
	InvocationID string
	Payload      any
}

// Emit appends an event to the journal and notifies listeners. Journal
// failures propagate to the caller; notification always happens.
func (e *Emitter) Emit(ctx context.Context, input EmitInput) (Event, error) {
	defer e.notify()

	if e.store == nil {
		return Event{}, nil
	}

	payloadJSON, err := json.Marshal(input.Payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event payload: %w", err)
	}

	if input.InvocationID == "" {
		input.InvocationID = InvocationIDFromContext(ctx)
	}
	evt := Event{
		Timestamp:    e.now().UTC(),
		Type:         input.Type,
		Actor:        input.Actor,
		InvocationID: input.InvocationID,
		PayloadJSON:  payloadJSON,
	}
	return e.store.AppendEvent(ctx, evt)
}

func (e *Emitter) notify() {
	for _, n := range e.notifiers {
		n.StateChanged()
	}
}
