package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadmap-backend/internal/realtime"
)

type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// GET /events?roadmap_id=...
// Without roadmap_id the stream carries every roadmap's events.
func (h *EventsHandler) Stream(c *gin.Context) {
	channel := strings.TrimSpace(c.Query("roadmap_id"))
	if channel == "" {
		channel = realtime.AllChannel
	}
	client := h.hub.NewClient()
	h.hub.AddChannel(client, channel)
	defer h.hub.CloseClient(client)

	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
