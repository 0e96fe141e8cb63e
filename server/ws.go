package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebsocket streams the full render state to the client: one frame
// immediately on connect, then one per push interval until the peer goes
// away. Frames are snapshots, so a slow client only ever lags, never
// desynchronizes.
func (s *Server) handleWebsocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Error("server: websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.NewString()
	s.metrics.wsClients.Inc()
	defer s.metrics.wsClients.Dec()
	s.log.Info("server: websocket client connected", "session_id", sessionID)

	// Drain inbound frames so close messages are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := ws.WriteJSON(s.renderState()); err != nil {
		return
	}

	ticker := time.NewTicker(s.push)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			s.log.Info("server: websocket client disconnected", "session_id", sessionID)
			return
		case <-ticker.C:
			if err := ws.WriteJSON(s.renderState()); err != nil {
				s.log.Info("server: websocket client disconnected",
					"session_id", sessionID, "error", err)
				return
			}
		}
	}
}
