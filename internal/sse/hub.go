package sse

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type PageUpdatedEvent struct {
	PageID    uuid.UUID `json:"page_id"`
	UpdatedBy uuid.UUID `json:"updated_by"`
}

type PageStatusChangedEvent struct {
	PageID    uuid.UUID `json:"page_id"`
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changed_by"`
}

type VersionActivatedEvent struct {
	PageID      uuid.UUID `json:"page_id"`
	VersionID   uuid.UUID `json:"version_id"`
	ActivatedBy uuid.UUID `json:"activated_by"`
}

// Client is one connected admin dashboard session. Pages holds the page ids
// the client wants edit notifications for.
type Client struct {
	ID     string
	UserID uuid.UUID
	Pages  map[uuid.UUID]bool
	Send   chan []byte
}

// Hub fans page change events out to subscribed admin clients so open
// editors can warn about concurrent edits.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *PageMessage
	mu         sync.RWMutex
}

type PageMessage struct {
	PageID uuid.UUID
	Event  Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *PageMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Event)
			for _, client := range h.clients {
				if client.Pages[msg.PageID] {
					select {
					case client.Send <- data:
					default:
						// Client buffer full, skip
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) SubscribeToPage(clientID string, pageID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		client.Pages[pageID] = true
	}
}

func (h *Hub) UnsubscribeFromPage(clientID string, pageID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Pages, pageID)
	}
}

func (h *Hub) BroadcastPageUpdate(pageID, updatedBy uuid.UUID) {
	h.broadcast <- &PageMessage{
		PageID: pageID,
		Event: Event{
			Type: "page_updated",
			Data: PageUpdatedEvent{PageID: pageID, UpdatedBy: updatedBy},
		},
	}
}

func (h *Hub) BroadcastStatusChange(pageID uuid.UUID, status string, changedBy uuid.UUID) {
	h.broadcast <- &PageMessage{
		PageID: pageID,
		Event: Event{
			Type: "page_status_changed",
			Data: PageStatusChangedEvent{PageID: pageID, Status: status, ChangedBy: changedBy},
		},
	}
}

func (h *Hub) BroadcastVersionActivated(pageID, versionID, activatedBy uuid.UUID) {
	h.broadcast <- &PageMessage{
		PageID: pageID,
		Event: Event{
			Type: "version_activated",
			Data: VersionActivatedEvent{PageID: pageID, VersionID: versionID, ActivatedBy: activatedBy},
		},
	}
}
