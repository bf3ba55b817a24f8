package machines

import (
	"context"
	"sync"
	"testing"

	"github.com/quatton/scitech/pkg/db"
	"github.com/quatton/scitech/pkg/scapi/schemas"
)

func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	ctx := context.Background()

	database, err := db.New(ctx, db.Config{Driver: db.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := db.Migrate(ctx, database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewBunStore(database)
}

func newSeededStore(t *testing.T) *BunStore {
	t.Helper()
	store := newTestStore(t)
	if _, err := store.SeedIfEmpty(context.Background(), SeedMachines()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

// recorder is a Publisher that keeps every event it receives.
type recorder struct {
	mu     sync.Mutex
	events []schemas.Machine
	err    error
}

func (r *recorder) Publish(_ context.Context, m schemas.Machine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, m)
	return r.err
}

func (r *recorder) Events() []schemas.Machine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]schemas.Machine(nil), r.events...)
}

func ptr[T any](v T) *T { return &v }
