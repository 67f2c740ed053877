package handlers

import (
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub HubInterface
}

func NewSSEHandler(hub HubInterface) *SSEHandler {
	return &SSEHandler{hub: hub}
}

// Connect opens the admin change feed. An optional ?page_id= pre-subscribes
// the client; further subscriptions go through Subscribe with the client id
// sent in the initial system event.
func (h *SSEHandler) Connect(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pages := make(map[uuid.UUID]bool)
	if raw := c.QueryParam("page_id"); raw != "" {
		pageID, err := uuid.Parse(raw)
		if err != nil {
			c.BadRequest("invalid page id")
			return
		}
		pages[pageID] = true
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:     clientID,
		UserID: userID,
		Pages:  pages,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *SSEHandler) Subscribe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	pageID, err := uuid.Parse(c.Param("pageId"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	h.hub.SubscribeToPage(clientID, pageID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("subscribed to page %s", pageID),
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	pageID, err := uuid.Parse(c.Param("pageId"))
	if err != nil {
		c.BadRequest("invalid page id")
		return
	}

	h.hub.UnsubscribeFromPage(clientID, pageID)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("unsubscribed from page %s", pageID),
	})
}
