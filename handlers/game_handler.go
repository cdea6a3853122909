package handlers

import (
	"net/http"

	"github.com/Dosada05/card-league/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{gameService: gs}
}

// winner_pairing_id: null clears the result.
type updateGameRequest struct {
	WinnerPairingID *int `json:"winner_pairing_id"`
}

// UpdateResultHandler обрабатывает PATCH /api/games/{gameID}
func (h *GameHandler) UpdateResultHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input updateGameRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.gameService.SetWinner(r.Context(), id, input.WinnerPairingID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
