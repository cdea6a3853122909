package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/card-league/realtime"
)

type WebSocketHandler struct {
	hub *realtime.Hub
}

func NewWebSocketHandler(hub *realtime.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs подключает клиента к комнате турнира /ws/tournaments/{tournamentID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	room := realtime.TournamentRoom(tournamentID)
	if err := h.hub.Serve(w, r, room); err != nil {
		// Upgrade сам отвечает клиенту при ошибке рукопожатия
		slog.WarnContext(r.Context(), "websocket upgrade failed", slog.String("room", room), slog.Any("error", err))
		return
	}
	slog.DebugContext(r.Context(), "websocket client connected", slog.String("room", room))
}
