package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
)

type EventsInput struct {
	ID int `query:"id" minimum:"0" doc:"Only stream updates for this machine id; 0 streams all"`
}

// RegisterEvents exposes the broadcast hub as a server-sent event stream.
// Observers get future updates only and should fetch GET /machines for the
// initial snapshot.
func RegisterEvents(api huma.API, svcs *services.Services) {
	sse.Register(api, huma.Operation{
		OperationID: "stream-machine-updates",
		Method:      http.MethodGet,
		Path:        "/machines/events",
		Summary:     "Stream machine updates",
		Description: "Server-sent events carrying the full machine record after every change",
		Tags:        []string{TagMachines.String()},
	}, map[string]any{
		broadcast.EventMachineUpdates: schemas.Machine{},
	}, func(ctx context.Context, input *EventsInput, send sse.Sender) {
		sub := svcs.Hub.Subscribe(broadcast.DefaultBuffer)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-sub.C:
				if !ok {
					return
				}
				if input.ID != 0 && m.ID != input.ID {
					continue
				}
				if err := send.Data(m); err != nil {
					return
				}
			}
		}
	})
}
