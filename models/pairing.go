package models

import "fmt"

// Pairing is a two-player partnership inside one tournament.
// Player1ID is always the lower id.
type Pairing struct {
	ID           int `json:"id" db:"id"`
	TournamentID int `json:"tournament_id" db:"tournament_id"`
	Player1ID    int `json:"player1_id" db:"player1_id"`
	Player2ID    int `json:"player2_id" db:"player2_id"`

	// Joined from players, not stored on the pairing row
	Player1Name string `json:"player1_name" db:"-"`
	Player2Name string `json:"player2_name" db:"-"`
}

func (p Pairing) HasPlayer(playerID int) bool {
	return p.Player1ID == playerID || p.Player2ID == playerID
}

// Partner returns the other member of the pairing.
func (p Pairing) Partner(playerID int) (id int, name string, ok bool) {
	switch playerID {
	case p.Player1ID:
		return p.Player2ID, p.Player2Name, true
	case p.Player2ID:
		return p.Player1ID, p.Player1Name, true
	}
	return 0, "", false
}

// DisplayName formats the pairing as "Anna & Ben".
func (p Pairing) DisplayName() string {
	if p.Player1Name == "" && p.Player2Name == "" {
		return fmt.Sprintf("Pairing %d", p.ID)
	}
	return p.Player1Name + " & " + p.Player2Name
}
