package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

const (
	MessageGameUpdated       = "GAME_UPDATED"
	MessageTournamentDeleted = "TOURNAMENT_DELETED"
)

// Message is the envelope pushed to websocket clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

// TournamentRoom names the room clients of one tournament join.
func TournamentRoom(tournamentID int) string {
	return fmt.Sprintf("tournament_%d", tournamentID)
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger.With(slog.String("component", "realtime_hub")),
	}
}

// Run processes registrations until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.logger.Debug("client registered", slog.String("room", client.room), slog.Int("clients", len(h.rooms[client.room])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if roomClients, ok := h.rooms[client.room]; ok {
				if _, okClient := roomClients[client]; okClient {
					client.closeSend()
					delete(roomClients, client)
					if len(roomClients) == 0 {
						delete(h.rooms, client.room)
						h.logger.Debug("room closed as it's empty", slog.String("room", client.room))
					}
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for room, roomClients := range h.rooms {
				for client := range roomClients {
					client.closeSend()
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			h.logger.Info("hub stopped")
			return
		}
	}
}

// ClientCount reports how many clients are joined to room.
func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom sends message to every client in room. Slow clients whose
// buffer is full miss the message.
func (h *Hub) BroadcastToRoom(room string, message Message) {
	message.RoomID = room
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", slog.String("room", room), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	roomClients, ok := h.rooms[room]
	if !ok {
		h.logger.Debug("no clients in room to broadcast to", slog.String("room", room))
		return
	}

	for client := range roomClients {
		client.mu.Lock()
		if client.closed {
			client.mu.Unlock()
			continue
		}
		select {
		case client.send <- messageBytes:
		default:
			h.logger.Warn("client send buffer full, message dropped", slog.String("room", room))
		}
		client.mu.Unlock()
	}
}
