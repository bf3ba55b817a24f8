package machines

import (
	"context"
	"errors"
	"testing"

	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/sclog"
)

func TestMachinesService_UpdatePublishesAfterWrite(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	var seenInStore *schemas.Machine
	pub := &recorder{}
	checking := publisherFunc(func(ctx context.Context, m schemas.Machine) error {
		// The write must already be visible when the event goes out.
		seenInStore, _ = store.Get(ctx, m.ID)
		return pub.Publish(ctx, m)
	})

	svc := NewMachinesService(store, checking, nil, sclog.Discard())

	got, err := svc.Update(ctx, 2, UpdateFields{Status: ptr(schemas.StatusRunning)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := schemas.Machine{ID: 2, Name: "CNC Milling Machine", Status: schemas.StatusRunning, Temperature: 65, EnergyConsumption: 800}
	if *got != want {
		t.Fatalf("unexpected result\nexpected=%+v\ngot=%+v", want, *got)
	}

	events := pub.Events()
	if len(events) != 1 || events[0] != want {
		t.Fatalf("expected one event with the updated record, got %+v", events)
	}
	if seenInStore == nil || *seenInStore != want {
		t.Fatalf("publish happened before the write was visible: %+v", seenInStore)
	}
}

func TestMachinesService_UpdateNotFound(t *testing.T) {
	store := newSeededStore(t)
	pub := &recorder{}
	svc := NewMachinesService(store, pub, nil, sclog.Discard())

	_, err := svc.Update(context.Background(), 99, UpdateFields{Status: ptr("Idle")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(pub.Events()) != 0 {
		t.Errorf("nothing should be published for a missing machine")
	}
}

func TestMachinesService_UpdateSurvivesPublishFailure(t *testing.T) {
	store := newSeededStore(t)
	pub := &recorder{err: errors.New("nats down")}
	svc := NewMachinesService(store, pub, nil, sclog.Discard())

	got, err := svc.Update(context.Background(), 1, UpdateFields{EnergyConsumption: ptr(900.0)})
	if err != nil {
		t.Fatalf("publish failure must not fail the update: %v", err)
	}
	if got.EnergyConsumption != 900 {
		t.Errorf("expected energy 900, got %v", got.EnergyConsumption)
	}
}

func TestMachinesService_Seed(t *testing.T) {
	store := newTestStore(t)
	svc := NewMachinesService(store, &recorder{}, nil, sclog.Discard())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := svc.Seed(ctx); err != nil {
			t.Fatalf("Seed run %d failed: %v", i, err)
		}
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected exactly 5 machines after repeated seeding, got %d", len(all))
	}
}

type publisherFunc func(ctx context.Context, m schemas.Machine) error

func (f publisherFunc) Publish(ctx context.Context, m schemas.Machine) error { return f(ctx, m) }
