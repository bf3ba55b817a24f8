package machines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quatton/scitech/pkg/db/models"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/uptrace/bun"
)

// BunStore implements Store on the machines table.
type BunStore struct {
	db  *bun.DB
	now func() time.Time
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *BunStore) SeedIfEmpty(ctx context.Context, records []schemas.Machine) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}

	seeded := false
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().Model((*models.Machine)(nil)).Count(ctx)
		if err != nil {
			return fmt.Errorf("counting machines: %w", err)
		}
		if count > 0 {
			return nil
		}

		now := s.now()
		rows := make([]models.Machine, 0, len(records))
		for _, r := range records {
			rows = append(rows, models.Machine{
				ID:                r.ID,
				Name:              r.Name,
				Status:            r.Status,
				Temperature:       r.Temperature,
				EnergyConsumption: r.EnergyConsumption,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
		}

		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("inserting seed machines: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (s *BunStore) List(ctx context.Context) ([]schemas.Machine, error) {
	var rows []models.Machine
	if err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}

	out := make([]schemas.Machine, 0, len(rows))
	for i := range rows {
		out = append(out, toSchema(&rows[i]))
	}
	return out, nil
}

func (s *BunStore) Get(ctx context.Context, id int) (*schemas.Machine, error) {
	return getMachine(ctx, s.db, id)
}

func (s *BunStore) Apply(ctx context.Context, id int, patch Patch) (*schemas.Machine, error) {
	var out *schemas.Machine
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if !patch.IsEmpty() {
			q := tx.NewUpdate().
				Model((*models.Machine)(nil)).
				Set("updated_at = ?", s.now()).
				Where("id = ?", id)
			if patch.Status != nil {
				q = q.Set("status = ?", *patch.Status)
			}
			if patch.Temperature != nil {
				q = q.Set("temperature = ?", *patch.Temperature)
			}
			if patch.EnergyConsumption != nil {
				q = q.Set("energy_consumption = ?", *patch.EnergyConsumption)
			}

			res, err := q.Exec(ctx)
			if err != nil {
				return fmt.Errorf("updating machine %d: %w", id, err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return &NotFoundError{ID: id}
			}
		}

		m, err := getMachine(ctx, tx, id)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func getMachine(ctx context.Context, db bun.IDB, id int) (*schemas.Machine, error) {
	row := new(models.Machine)
	err := db.NewSelect().Model(row).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("loading machine %d: %w", id, err)
	}
	m := toSchema(row)
	return &m, nil
}

func toSchema(row *models.Machine) schemas.Machine {
	return schemas.Machine{
		ID:                row.ID,
		Name:              row.Name,
		Status:            row.Status,
		Temperature:       row.Temperature,
		EnergyConsumption: row.EnergyConsumption,
	}
}

var _ Store = (*BunStore)(nil)
