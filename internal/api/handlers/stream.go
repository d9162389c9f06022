package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"safety-dashboard-go/internal/alerts"
)

const (
	// writeWait bounds a single frame write so a dead client cannot stall
	// the writer goroutine.
	writeWait = 10 * time.Second

	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from a different origin; the API is CORS-open.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler serves the push channels. Both transports consume the same
// hub subscription: one snapshot event on connect, then deltas.
type StreamHandler struct {
	service *alerts.Service
}

func NewStreamHandler(service *alerts.Service) *StreamHandler {
	return &StreamHandler{service: service}
}

// WebSocket streams alert events over a WebSocket connection
// @Summary Alert event stream (WebSocket)
// @Description Emits {event, data} frames: all_alerts once on connect, then new_alert, alert_resolved, alerts_cleared
// @Tags stream
// @Router /ws [get]
func (h *StreamHandler) WebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("remote", c.ClientIP()).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := h.service.Subscribe()
	defer h.service.Unsubscribe(sub)

	// Reader drains client frames and unblocks the writer on disconnect
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

// SSE streams alert events as Server-Sent Events
// @Summary Alert event stream (SSE)
// @Description Same events as /ws rendered as text/event-stream data lines
// @Tags stream
// @Produce text/event-stream
// @Router /alerts/stream [get]
func (h *StreamHandler) SSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	sub := h.service.Subscribe()
	defer h.service.Unsubscribe(sub)

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
				return
			}
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
