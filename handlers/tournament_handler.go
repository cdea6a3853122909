package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/card-league/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	gameService       services.GameService
	statsService      services.StatisticsService
	exportService     services.ExportService
}

func NewTournamentHandler(
	ts services.TournamentService,
	gs services.GameService,
	ss services.StatisticsService,
	es services.ExportService,
) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		gameService:       gs,
		statsService:      ss,
		exportService:     es,
	}
}

// CreateHandler обрабатывает POST /api/tournaments
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /api/tournaments/{tournamentID}
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /api/tournaments?year=
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	year, err := intQueryParam(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournaments, err := h.tournamentService.ListTournaments(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.DeleteTournament(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGamesHandler обрабатывает GET /api/tournaments/{tournamentID}/games
func (h *TournamentHandler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.gameService.ListGames(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ScoresHandler обрабатывает GET /api/tournaments/{tournamentID}/scores
func (h *TournamentHandler) ScoresHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scores, err := h.statsService.TournamentScores(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scores": scores}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportHandler обрабатывает POST /api/tournaments/{tournamentID}/export
func (h *TournamentHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.exportService.ExportTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RotationPreviewHandler обрабатывает GET /api/rotation?year=&month=
func (h *TournamentHandler) RotationPreviewHandler(w http.ResponseWriter, r *http.Request) {
	year, err := intQueryParam(r, "year")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	month, err := intQueryParam(r, "month")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if year == nil || month == nil {
		badRequestResponse(w, r, errors.New("year and month query parameters are required"))
		return
	}

	preview, err := h.tournamentService.PreviewRotation(r.Context(), *year, *month)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rotation": preview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
