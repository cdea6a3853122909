package schedule

import (
	"fmt"

	"github.com/Dosada05/card-league/models"
)

const (
	PairingsPerTournament = RosterSize / 2
	GamesPerMatchup       = 3
	GamesPerTournament    = PairingsPerTournament * (PairingsPerTournament - 1) / 2 * GamesPerMatchup
)

// Fixture describes one game before it is persisted.
type Fixture struct {
	PairingA    int `json:"pairing1_id"`
	PairingB    int `json:"pairing2_id"`
	RoundNumber int `json:"round_number"`
}

// Game converts the fixture into an unplayed game of the tournament.
func (f Fixture) Game(tournamentID int) models.Game {
	return models.Game{
		TournamentID: tournamentID,
		Pairing1ID:   f.PairingA,
		Pairing2ID:   f.PairingB,
		RoundNumber:  f.RoundNumber,
	}
}

// GenerateGames emits the 18 games of a tournament: every pair of pairings meets
// three times. Index pairs go (0,1),(0,2),(0,3),(1,2),(1,3),(2,3) and each pair
// gets rounds 1, 2, 3 in that order.
func GenerateGames(pairings []int) ([]Fixture, error) {
	if len(pairings) != PairingsPerTournament {
		return nil, fmt.Errorf("%w: got %d pairings", ErrInvalidFixture, len(pairings))
	}
	seen := make(map[int]struct{}, len(pairings))
	for _, id := range pairings {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate pairing id %d", ErrInvalidFixture, id)
		}
		seen[id] = struct{}{}
	}

	fixtures := make([]Fixture, 0, GamesPerTournament)
	for i := 0; i < len(pairings); i++ {
		for j := i + 1; j < len(pairings); j++ {
			for round := 1; round <= GamesPerMatchup; round++ {
				fixtures = append(fixtures, Fixture{
					PairingA:    pairings[i],
					PairingB:    pairings[j],
					RoundNumber: round,
				})
			}
		}
	}
	return fixtures, nil
}
