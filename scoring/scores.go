// Package scoring aggregates recorded game results into tournament and yearly
// scores. The functions only read their inputs and return fresh values.
package scoring

import (
	"errors"
	"fmt"

	"github.com/Dosada05/card-league/models"
)

var ErrInvalidWinner = errors.New("winner must be one of the two pairings of the game")

// Score is the result of one pairing within one tournament.
// There are no draws and a win is worth one point.
type Score struct {
	Points      int `json:"points"`
	GamesPlayed int `json:"games_played"`
	GamesWon    int `json:"games_won"`
}

type YearlyScore struct {
	TotalPoints       int `json:"total_points"`
	TournamentsPlayed int `json:"tournaments_played"`
}

// ValidateWinner must be called before a result is stored. A nil winner resets
// the game to undecided.
func ValidateWinner(game models.Game, winnerPairingID *int) error {
	if winnerPairingID == nil {
		return nil
	}
	if !game.Involves(*winnerPairingID) {
		return fmt.Errorf("%w: pairing %d does not play in game %d (%d vs %d)",
			ErrInvalidWinner, *winnerPairingID, game.ID, game.Pairing1ID, game.Pairing2ID)
	}
	return nil
}

// PairingScore counts the decided games of one pairing in one tournament.
// Games of other tournaments in the input are ignored.
func PairingScore(tournamentID, pairingID int, games []models.Game) Score {
	var s Score
	for _, g := range games {
		if g.TournamentID != tournamentID || !g.Decided() {
			continue
		}
		if g.Involves(pairingID) {
			s.GamesPlayed++
		}
		if g.WonBy(pairingID) {
			s.GamesWon++
		}
	}
	s.Points = s.GamesWon
	return s
}

// YearlyPlayerScore sums the wins of every pairing the player belonged to in the
// tournaments of the given year. Both partners of a winning pairing get the point.
func YearlyPlayerScore(playerID, year int, tournaments []models.Tournament, pairings []models.Pairing, games []models.Game) YearlyScore {
	inYear := tournamentsOfYear(year, tournaments)
	wins := winsByPairing(games)

	var ys YearlyScore
	played := make(map[int]struct{})
	for _, p := range pairings {
		if _, ok := inYear[p.TournamentID]; !ok || !p.HasPlayer(playerID) {
			continue
		}
		played[p.TournamentID] = struct{}{}
		ys.TotalPoints += wins[pairingKey{p.TournamentID, p.ID}]
	}
	ys.TournamentsPlayed = len(played)
	return ys
}

type pairingKey struct {
	tournamentID int
	pairingID    int
}

func winsByPairing(games []models.Game) map[pairingKey]int {
	wins := make(map[pairingKey]int)
	for _, g := range games {
		if g.WinnerPairingID == nil {
			continue
		}
		wins[pairingKey{g.TournamentID, *g.WinnerPairingID}]++
	}
	return wins
}

func tournamentsOfYear(year int, tournaments []models.Tournament) map[int]models.Tournament {
	res := make(map[int]models.Tournament)
	for _, t := range tournaments {
		if t.Year == year {
			res[t.ID] = t
		}
	}
	return res
}
