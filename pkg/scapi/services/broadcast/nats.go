package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/sclog"
)

// NATSPublisher mirrors machine updates onto a NATS subject for consumers
// outside this process.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNATSPublisher(url, subject string, logger *sclog.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("scitech-machines"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return &NATSPublisher{nc: nc, subject: subject}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, m schemas.Machine) error {
	if p.nc == nil || p.nc.IsClosed() {
		return fmt.Errorf("nats not connected")
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding machine %d: %w", m.ID, err)
	}
	msg := nats.NewMsg(p.subject)
	msg.Header.Set("Event", EventMachineUpdates)
	msg.Data = payload
	return p.nc.PublishMsg(msg)
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

var _ Publisher = (*NATSPublisher)(nil)
