package scsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quatton/scitech/pkg/client"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scsdk/scerr"
	"github.com/tmaxmax/go-sse"
)

const eventMachineUpdates = "machineUpdates"

func acceptEventStream(_ context.Context, req *http.Request) error {
	req.Header.Set("Accept", "text/event-stream")
	return nil
}

// Watch follows the server-sent event stream and calls fn for every machine
// update until ctx is cancelled, the stream ends, or fn returns an error.
// id 0 watches every machine. The stream itself needs no token.
func (s *Sdk) Watch(ctx context.Context, id int, fn func(schemas.Machine) error) error {
	params := &client.StreamMachineUpdatesParams{}
	if id != 0 {
		v := int64(id)
		params.Id = &v
	}

	reqCtx := context.WithValue(ctx, optionalAuthKey{}, true)
	resp, err := s.Client.StreamMachineUpdates(reqCtx, params, acceptEventStream)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return callError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		parsed, err := client.ParseStreamMachineUpdatesResponse(resp)
		if err != nil {
			return callError(err)
		}
		return s.apiError(resp, parsed.ApplicationproblemJSONDefault, s.Token != "")
	}

	for ev, err := range sse.Read(resp.Body, nil) {
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return scerr.New(scerr.CodeUnknown, fmt.Errorf("reading stream: %w", err))
		}
		if ev.Type != eventMachineUpdates {
			continue
		}

		var m client.Machine
		if err := json.Unmarshal([]byte(ev.Data), &m); err != nil {
			return scerr.New(scerr.CodeUnknown, fmt.Errorf("decoding event: %w", err))
		}
		if err := fn(fromClientMachine(m)); err != nil {
			return err
		}
	}
	return nil
}
