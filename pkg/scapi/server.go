package scapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
)

// NewServer returns the HTTP server for handler. Request contexts derive from
// ctx, so cancelling it ends long-lived push streams, and Shutdown closes the
// hub so connected observers are released even when ctx is still live.
func NewServer(ctx context.Context, addr string, handler http.Handler, hub *broadcast.Hub) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	if hub != nil {
		srv.RegisterOnShutdown(hub.Close)
	}
	return srv
}
