package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/quatton/scitech/pkg/scapi/schemas"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
	"github.com/quatton/scitech/pkg/sclog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are served from a different origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SocketHandler pushes {"event":"machineUpdates","data":...} frames to a
// websocket client. Messages from the client are read and discarded.
func SocketHandler(hub *broadcast.Hub, logger *sclog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = sclog.NewDefault()
	}
	logger = logger.With("component", "socket")

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		defer conn.Close()

		sub := hub.Subscribe(broadcast.DefaultBuffer)
		defer sub.Close()
		logger.Debug("observer connected", "remote", r.RemoteAddr)

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			conn.SetReadLimit(512)
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(pongWait))
			})
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				logger.Debug("observer disconnected", "remote", r.RemoteAddr)
				return
			case <-r.Context().Done():
				return
			case m, ok := <-sub.C:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				frame := schemas.MachineEvent{Event: broadcast.EventMachineUpdates, Data: m}
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
