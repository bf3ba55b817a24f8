package db

import (
	"context"
	"testing"

	"github.com/quatton/scitech/pkg/db/models"
)

func TestMigrate_SQLiteMemory(t *testing.T) {
	ctx := context.Background()

	database, err := New(ctx, Config{Driver: DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer database.Close()

	applied, err := Migrate(ctx, database)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if applied == "" {
		t.Fatal("expected the first run to apply migrations")
	}

	applied, err = Migrate(ctx, database)
	if err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
	if applied != "" {
		t.Errorf("expected no pending migrations, got %s", applied)
	}

	count, err := database.NewSelect().Model((*models.Machine)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("machines table not usable: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty machines table, got %d rows", count)
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	if _, err := New(context.Background(), Config{Driver: "mongo"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
