package machines

import (
	"context"

	"github.com/quatton/scitech/pkg/scapi/metrics"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
	"github.com/quatton/scitech/pkg/sclog"
)

// MachinesService is the read path and the operator update path.
type MachinesService struct {
	store   Store
	pub     broadcast.Publisher
	metrics *metrics.Metrics
	logger  *sclog.Logger
}

func NewMachinesService(store Store, pub broadcast.Publisher, m *metrics.Metrics, logger *sclog.Logger) *MachinesService {
	return &MachinesService{
		store:   store,
		pub:     pub,
		metrics: m,
		logger:  logger.With("component", "machines"),
	}
}

// Seed inserts the reference fleet if the store is empty.
func (s *MachinesService) Seed(ctx context.Context) error {
	seeded, err := s.store.SeedIfEmpty(ctx, SeedMachines())
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info("seeded machines", "count", len(SeedMachines()))
	} else {
		s.logger.Debug("machines already present, skipping seed")
	}
	return nil
}

func (s *MachinesService) List(ctx context.Context) ([]schemas.Machine, error) {
	return s.store.List(ctx)
}

func (s *MachinesService) Get(ctx context.Context, id int) (*schemas.Machine, error) {
	return s.store.Get(ctx, id)
}

// UpdateFields is the operator-editable subset of a machine. Status is not
// checked against the nominal values.
type UpdateFields struct {
	Status            *string
	EnergyConsumption *float64
}

// Update writes the fields, then publishes the resulting record, then
// returns it. A publish failure is logged and does not fail the update.
func (s *MachinesService) Update(ctx context.Context, id int, fields UpdateFields) (*schemas.Machine, error) {
	m, err := s.store.Apply(ctx, id, Patch{
		Status:            fields.Status,
		EnergyConsumption: fields.EnergyConsumption,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Updated(metrics.SourceOperator, *m)
	if err := s.pub.Publish(ctx, *m); err != nil {
		s.metrics.PublishFailed()
		s.logger.Warn("publish failed", "id", m.ID, "error", err)
	}

	s.logger.Info("machine updated", "id", m.ID, "status", m.Status, "energy", m.EnergyConsumption)
	return m, nil
}
