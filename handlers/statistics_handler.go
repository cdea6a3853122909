package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/card-league/services"
	"github.com/go-chi/chi/v5"
)

type StatisticsHandler struct {
	statsService services.StatisticsService
}

func NewStatisticsHandler(ss services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: ss}
}

func yearFromURL(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year format: %q", raw)
	}
	return year, nil
}

// YearlyHandler обрабатывает GET /api/statistics/yearly/{year}
func (h *StatisticsHandler) YearlyHandler(w http.ResponseWriter, r *http.Request) {
	year, err := yearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.statsService.YearlyStandings(r.Context(), year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"year": year, "standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PlayerYearHandler обрабатывает GET /api/statistics/player/{playerID}/yearly/{year}
func (h *StatisticsHandler) PlayerYearHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	year, err := yearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	details, err := h.statsService.PlayerYear(r.Context(), playerID, year)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"statistics": details}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
