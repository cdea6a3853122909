package scoring

import (
	"sort"

	"github.com/Dosada05/card-league/models"
)

// PairingStanding is one row of a tournament table.
type PairingStanding struct {
	PairingID    int    `json:"pairing_id"`
	TournamentID int    `json:"tournament_id"`
	PairingNames string `json:"pairing_names"`
	Score
}

// PlayerStanding is one row of the yearly table.
type PlayerStanding struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	YearlyScore
}

type PlayerTournamentResult struct {
	TournamentID   int     `json:"tournament_id"`
	TournamentName string  `json:"tournament_name"`
	Month          int     `json:"month"`
	PartnerID      *int    `json:"partner_id"`
	Partner        *string `json:"partner"`
	Points         int     `json:"points"`
}

type PlayerYearDetails struct {
	PlayerID    int                      `json:"player_id"`
	PlayerName  string                   `json:"player_name"`
	Year        int                      `json:"year"`
	Tournaments []PlayerTournamentResult `json:"tournaments"`
	TotalPoints int                      `json:"total_points"`
}

// TournamentStandings scores every pairing of the tournament and ranks them.
func TournamentStandings(tournamentID int, pairings []models.Pairing, games []models.Game) []PairingStanding {
	standings := make([]PairingStanding, 0, len(pairings))
	for _, p := range pairings {
		if p.TournamentID != tournamentID {
			continue
		}
		standings = append(standings, PairingStanding{
			PairingID:    p.ID,
			TournamentID: tournamentID,
			PairingNames: p.DisplayName(),
			Score:        PairingScore(tournamentID, p.ID, games),
		})
	}
	RankPairings(standings)
	return standings
}

// YearlyStandings scores every player for the year and ranks them. Players
// without a tournament in that year are listed with zero points.
func YearlyStandings(year int, players []models.Player, tournaments []models.Tournament, pairings []models.Pairing, games []models.Game) []PlayerStanding {
	standings := make([]PlayerStanding, 0, len(players))
	for _, pl := range players {
		standings = append(standings, PlayerStanding{
			PlayerID:    pl.ID,
			PlayerName:  pl.Name,
			YearlyScore: YearlyPlayerScore(pl.ID, year, tournaments, pairings, games),
		})
	}
	RankPlayers(standings)
	return standings
}

// PlayerYear breaks the yearly score of one player down by tournament, ordered by month.
func PlayerYear(player models.Player, year int, tournaments []models.Tournament, pairings []models.Pairing, games []models.Game) PlayerYearDetails {
	details := PlayerYearDetails{
		PlayerID:    player.ID,
		PlayerName:  player.Name,
		Year:        year,
		Tournaments: []PlayerTournamentResult{},
	}

	ofYear := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.Year == year {
			ofYear = append(ofYear, t)
		}
	}
	sort.SliceStable(ofYear, func(i, j int) bool {
		if ofYear[i].Month != ofYear[j].Month {
			return ofYear[i].Month < ofYear[j].Month
		}
		return ofYear[i].ID < ofYear[j].ID
	})

	wins := winsByPairing(games)
	for _, t := range ofYear {
		res := PlayerTournamentResult{
			TournamentID:   t.ID,
			TournamentName: t.Name,
			Month:          t.Month,
		}
		for _, p := range pairings {
			if p.TournamentID != t.ID || !p.HasPlayer(player.ID) {
				continue
			}
			res.Points += wins[pairingKey{t.ID, p.ID}]
			if res.PartnerID == nil {
				partnerID, partnerName, _ := p.Partner(player.ID)
				res.PartnerID = &partnerID
				res.Partner = &partnerName
			}
		}
		details.TotalPoints += res.Points
		details.Tournaments = append(details.Tournaments, res)
	}
	return details
}

// RankPairings orders by points descending, ties by pairing id ascending.
func RankPairings(standings []PairingStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].PairingID < standings[j].PairingID
	})
}

// RankPlayers orders by total points descending, ties by player id ascending.
func RankPlayers(standings []PlayerStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})
}
