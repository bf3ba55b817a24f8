package machines

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/quatton/scitech/pkg/scapi/metrics"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
	"github.com/quatton/scitech/pkg/sclog"
)

const (
	MinTemperature = schemas.MinTemperature
	MaxTemperature = schemas.MaxTemperature

	DefaultInterval = 5 * time.Second
)

// ClampTemperature bounds t to [MinTemperature, MaxTemperature].
func ClampTemperature(t int) int {
	return min(max(t, MinTemperature), MaxTemperature)
}

// Perturb returns current plus a delta drawn from {-2..2} using r in [0,1),
// clamped to the allowed range.
func Perturb(current int, r float64) int {
	delta := int(math.Floor(r*5)) - 2
	return ClampTemperature(current + delta)
}

// Simulator drifts the temperature of every machine that is not Stopped.
type Simulator struct {
	store    Store
	pub      broadcast.Publisher
	metrics  *metrics.Metrics
	logger   *sclog.Logger
	interval time.Duration
	rand     func() float64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type SimulatorOption func(*Simulator)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) SimulatorOption {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRand overrides the random source; f must return values in [0,1).
func WithRand(f func() float64) SimulatorOption {
	return func(s *Simulator) { s.rand = f }
}

func NewSimulator(store Store, pub broadcast.Publisher, m *metrics.Metrics, logger *sclog.Logger, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		store:    store,
		pub:      pub,
		metrics:  m,
		logger:   logger.With("component", "simulator"),
		interval: DefaultInterval,
		rand:     rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the ticker goroutine. Calling Start on a running simulator
// is a no-op.
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	s.logger.Info("simulator started", "interval", s.interval)
}

// Stop cancels the ticker and waits for an in-flight tick to finish.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("simulator stopped")
}

func (s *Simulator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("tick failed", "error", err)
			}
		}
	}
}

// Tick perturbs each non-Stopped machine once, one record at a time. A
// failure on one record is logged and the rest are still processed. The
// returned error is only for failing to read the fleet.
func (s *Simulator) Tick(ctx context.Context) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	for _, m := range all {
		if m.Status == schemas.StatusStopped {
			s.metrics.Seen(m)
			continue
		}

		temp := Perturb(m.Temperature, s.rand())
		updated, err := s.store.Apply(ctx, m.ID, Patch{Temperature: &temp})
		if err != nil {
			s.logger.Warn("temperature write failed", "id", m.ID, "error", err)
			continue
		}

		s.metrics.Updated(metrics.SourceSimulator, *updated)
		if err := s.pub.Publish(ctx, *updated); err != nil {
			s.metrics.PublishFailed()
			s.logger.Warn("publish failed", "id", updated.ID, "error", err)
		}
	}

	s.metrics.Tick()
	s.logger.Debug("tick complete", "machines", len(all))
	return nil
}
