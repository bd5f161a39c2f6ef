package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

type mockStore struct {
	events []Event
}

func (m *mockStore) AppendEvent(ctx context.Context, evt Event) (Event, error) {
	evt.Seq = uint64(len(m.events) + 1)
	m.events = append(m.events, evt)
	return evt, nil
}

type mockNotifier struct {
	calls int
}

func (m *mockNotifier) StateChanged() { m.calls++ }

func TestEmitterEmit(t *testing.T) {
	store := &mockStore{}
	emitter := NewEmitter(store)

	fixedTime := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	emitter.now = func() time.Time { return fixedTime }

	evt, err := emitter.Emit(context.Background(), EmitInput{
		Type:  TypeRoundSubmitted,
		Actor: "Thorin Ironbeard",
		Payload: RoundSubmittedPayload{
			RoundID:      1,
			AttacksMade:  2,
			KillingBlows: []string{"Goblin Archer"},
		},
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if evt.Seq != 1 {
		t.Errorf("expected seq 1, got %d", evt.Seq)
	}
	if evt.Type != TypeRoundSubmitted {
		t.Errorf("expected type %s, got %s", TypeRoundSubmitted, evt.Type)
	}
	if !evt.Timestamp.Equal(fixedTime) {
		t.Errorf("expected timestamp %v, got %v", fixedTime, evt.Timestamp)
	}

	var payload RoundSubmittedPayload
	if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.RoundID != 1 || len(payload.KillingBlows) != 1 {
		t.Errorf("expected payload preserved, got %+v", payload)
	}
}

func TestEmitterNotifiesListeners(t *testing.T) {
	notifier := &mockNotifier{}
	emitter := NewEmitter(&mockStore{}, notifier)

	if _, err := emitter.Emit(context.Background(), EmitInput{Type: TypeTurnAdvanced}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.calls)
	}
}

func TestEmitterReadsInvocationIDFromContext(t *testing.T) {
	store := &mockStore{}
	emitter := NewEmitter(store)

	ctx := WithInvocationID(context.Background(), "inv-1")
	evt, err := emitter.Emit(ctx, EmitInput{Type: TypeTurnAdvanced})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if evt.InvocationID != "inv-1" {
		t.Errorf("expected invocation id from context, got %q", evt.InvocationID)
	}

	evt, err = emitter.Emit(ctx, EmitInput{Type: TypeTurnAdvanced, InvocationID: "explicit"})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if evt.InvocationID != "explicit" {
		t.Errorf("expected explicit invocation id kept, got %q", evt.InvocationID)
	}
}

func TestEmitterNilStoreStillNotifies(t *testing.T) {
	notifier := &mockNotifier{}
	emitter := NewEmitter(nil, notifier)

	evt, err := emitter.Emit(context.Background(), EmitInput{Type: TypeTurnAdvanced})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if evt.Seq != 0 {
		t.Errorf("expected zero event without a store, got %+v", evt)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.calls)
	}
}
