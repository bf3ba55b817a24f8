// Package machines owns machine state: the store, the operator update path
// and the temperature simulator.
package machines

import (
	"context"

	"github.com/quatton/scitech/pkg/scapi/schemas"
)

// Patch is a field-level partial update. Nil fields are left untouched.
type Patch struct {
	Status            *string
	Temperature       *int
	EnergyConsumption *float64
}

func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Temperature == nil && p.EnergyConsumption == nil
}

// Store is the authoritative holder of machine records. Callers receive
// copies; mutating a returned value never changes stored state.
type Store interface {
	// SeedIfEmpty inserts records only when the store holds none. It reports
	// whether anything was inserted.
	SeedIfEmpty(ctx context.Context, records []schemas.Machine) (bool, error)

	// List returns every record ordered by ascending id.
	List(ctx context.Context) ([]schemas.Machine, error)

	// Get returns a *NotFoundError when no record has the id.
	Get(ctx context.Context, id int) (*schemas.Machine, error)

	// Apply merges patch into the record atomically and returns the result.
	// It returns a *NotFoundError when no record has the id.
	Apply(ctx context.Context, id int, patch Patch) (*schemas.Machine, error)
}
