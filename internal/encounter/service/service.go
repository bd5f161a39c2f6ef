// Package service exposes the encounter tracker as a set of serialized
// command and query operations over the domain model.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/greywick/roundtracker/internal/encounter/domain"
	"github.com/greywick/roundtracker/internal/encounter/event"
	"github.com/greywick/roundtracker/internal/id"
	"github.com/greywick/roundtracker/internal/storage"
)

const tracerName = "roundtracker/encounter"

// Service owns the live encounter. All mutating operations take the single
// writer lock, so callers on any goroutine observe fully applied commands
// and never intermediate state.
type Service struct {
	mu sync.Mutex

	roster    *domain.Roster
	sequencer *domain.Sequencer

	emitter   *event.Emitter
	snapshots storage.SnapshotStore
	events    storage.EventStore

	tracer      trace.Tracer
	clock       func() time.Time
	idGenerator func() (string, error)
}

// Options configures a Service.
type Options struct {
	// Roster is the starting roster. Nil starts an empty encounter.
	Roster *domain.Roster
	// Snapshots persists save documents. Nil disables snapshot commands.
	Snapshots storage.SnapshotStore
	// Events receives the journal. Nil disables journaling.
	Events storage.EventStore
	// Notifiers are signaled after every mutating command.
	Notifiers []event.Notifier
}

// New creates a Service with default dependencies.
func New(opts Options) *Service {
	roster := opts.Roster
	if roster == nil {
		roster = &domain.Roster{}
	}
	var eventStore event.Store
	if opts.Events != nil {
		eventStore = opts.Events
	}
	return &Service{
		roster:      roster,
		sequencer:   domain.NewSequencer(roster),
		emitter:     event.NewEmitter(eventStore, opts.Notifiers...),
		snapshots:   opts.Snapshots,
		events:      opts.Events,
		tracer:      otel.Tracer(tracerName),
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// CurrentRound returns the sequencer's round number.
func (s *Service) CurrentRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Round()
}

// CurrentInitiative returns the sequencer's initiative value.
func (s *Service) CurrentInitiative() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Initiative()
}

// TurnState reports the sequencer position in one call.
type TurnState struct {
	Round      int   `json:"round"`
	Initiative int   `json:"initiative"`
	Order      []int `json:"order"`
}

// Turn returns the current round, initiative, and living initiative order.
func (s *Service) Turn() TurnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TurnState{
		Round:      s.sequencer.Round(),
		Initiative: s.sequencer.Initiative(),
		Order:      s.sequencer.LivingInitiatives(),
	}
}

// LivingInitiatives returns the distinct living initiative values, sorted
// descending.
func (s *Service) LivingInitiatives() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.LivingInitiatives()
}

// Acted reports whether the named participant submitted at the current
// sequencer position.
func (s *Service) Acted(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Acted(name)
}

// ListEvents returns journal events in append order, oldest first.
func (s *Service) ListEvents(ctx context.Context, limit int) ([]event.Event, error) {
	if s.events == nil {
		return nil, fmt.Errorf("event storage is not configured")
	}
	if limit <= 0 {
		limit = 100
	}
	return s.events.ListEvents(ctx, limit)
}
