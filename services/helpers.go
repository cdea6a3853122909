package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/card-league/models"
)

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// DefaultTournamentName renders "January 2026" style names.
func DefaultTournamentName(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

func tournamentIDs(tournaments []models.Tournament) []int {
	ids := make([]int, len(tournaments))
	for i, t := range tournaments {
		ids[i] = t.ID
	}
	return ids
}

func pairingsByID(pairings []models.Pairing) map[int]models.Pairing {
	byID := make(map[int]models.Pairing, len(pairings))
	for _, p := range pairings {
		byID[p.ID] = p
	}
	return byID
}

func toGameView(game models.Game, pairings map[int]models.Pairing) models.GameView {
	view := models.GameView{Game: game}
	if p, ok := pairings[game.Pairing1ID]; ok {
		view.Pairing1Names = p.DisplayName()
	}
	if p, ok := pairings[game.Pairing2ID]; ok {
		view.Pairing2Names = p.DisplayName()
	}
	if game.WinnerPairingID != nil {
		if p, ok := pairings[*game.WinnerPairingID]; ok {
			names := p.DisplayName()
			view.WinnerNames = &names
		}
	}
	return view
}

func toGameViews(games []models.Game, pairings []models.Pairing) []models.GameView {
	byID := pairingsByID(pairings)
	views := make([]models.GameView, len(games))
	for i, g := range games {
		views[i] = toGameView(g, byID)
	}
	return views
}
