package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Machine is the persisted machine row. ID is the external identity and is
// assigned by the seed data, never by the database.
type Machine struct {
	bun.BaseModel `bun:"table:machines,alias:m"`

	ID                int     `bun:"id,pk"`
	Name              string  `bun:",notnull"`
	Status            string  `bun:",notnull"`
	Temperature       int     `bun:",notnull"`
	EnergyConsumption float64 `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
