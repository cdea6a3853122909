package services

import "github.com/Dosada05/card-league/realtime"

// Broadcaster pushes realtime messages to websocket rooms. *realtime.Hub
// implements it.
type Broadcaster interface {
	BroadcastToRoom(room string, message realtime.Message)
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastToRoom(string, realtime.Message) {}
