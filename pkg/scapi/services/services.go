package services

import (
	"time"

	"github.com/quatton/scitech/pkg/kv"
	"github.com/quatton/scitech/pkg/scapi/metrics"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services/auth"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
	"github.com/quatton/scitech/pkg/scapi/services/iam"
	"github.com/quatton/scitech/pkg/scapi/services/machines"
	"github.com/quatton/scitech/pkg/sclog"
)

type Services struct {
	Auth      *auth.AuthService
	IAM       *iam.IAMService
	Machines  *machines.MachinesService
	Simulator *machines.Simulator
	Hub       *broadcast.Hub
	Metrics   *metrics.Metrics
	Logger    *sclog.Logger
}

// Deps are the already-connected backends the services are built on.
type Deps struct {
	Store    machines.Store
	Revoked  kv.Store
	Verifier auth.Verifier
	Secret   string
	TokenTTL time.Duration

	// Mirrors receive every event after the in-process hub.
	Mirrors []broadcast.Publisher
	SimOpts []machines.SimulatorOption

	Metrics *metrics.Metrics
	Logger  *sclog.Logger
}

// NewServices wires the machine core so that the simulator and the update
// path share one publisher.
func NewServices(d Deps) *Services {
	logger := d.Logger
	if logger == nil {
		logger = sclog.NewDefault()
	}

	hub := broadcast.NewHub()
	hub.OnDrop = func(schemas.Machine) { d.Metrics.Dropped() }
	hub.OnCountChange = d.Metrics.Observers

	pub := broadcast.Fanout(append([]broadcast.Publisher{hub}, d.Mirrors...)...)

	authSvc := auth.NewAuthService(d.Verifier, d.Revoked, d.Secret, d.TokenTTL)

	return &Services{
		Auth:      authSvc,
		IAM:       iam.NewIAMService(authSvc, logger),
		Machines:  machines.NewMachinesService(d.Store, pub, d.Metrics, logger),
		Simulator: machines.NewSimulator(d.Store, pub, d.Metrics, logger, d.SimOpts...),
		Hub:       hub,
		Metrics:   d.Metrics,
		Logger:    logger,
	}
}
