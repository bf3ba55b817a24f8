// Package broadcast delivers machineUpdates events to observers.
package broadcast

import (
	"context"
	"errors"

	"github.com/quatton/scitech/pkg/scapi/schemas"
)

// EventMachineUpdates is the event name observers subscribe to.
const EventMachineUpdates = "machineUpdates"

// Publisher is handed to every component that mutates machine state. Publish
// is called after the corresponding store write has completed.
type Publisher interface {
	Publish(ctx context.Context, m schemas.Machine) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, m schemas.Machine) error

func (f PublisherFunc) Publish(ctx context.Context, m schemas.Machine) error {
	return f(ctx, m)
}

type fanout []Publisher

// Fanout publishes to every non-nil publisher in order and joins their errors.
func Fanout(pubs ...Publisher) Publisher {
	out := make(fanout, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (f fanout) Publish(ctx context.Context, m schemas.Machine) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
