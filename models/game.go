package models

// Game is one of the 18 games of a tournament. WinnerPairingID is nil until a result is entered.
type Game struct {
	ID              int  `json:"id" db:"id"`
	TournamentID    int  `json:"tournament_id" db:"tournament_id"`
	Pairing1ID      int  `json:"pairing1_id" db:"pairing1_id"`
	Pairing2ID      int  `json:"pairing2_id" db:"pairing2_id"`
	RoundNumber     int  `json:"round_number" db:"round_number"` // 1, 2 или 3
	WinnerPairingID *int `json:"winner_pairing_id" db:"winner_pairing_id"`
}

func (g Game) Involves(pairingID int) bool {
	return g.Pairing1ID == pairingID || g.Pairing2ID == pairingID
}

func (g Game) Decided() bool {
	return g.WinnerPairingID != nil
}

func (g Game) WonBy(pairingID int) bool {
	return g.WinnerPairingID != nil && *g.WinnerPairingID == pairingID
}

// GameView is a game enriched with pairing display names for API responses.
type GameView struct {
	Game
	Pairing1Names string  `json:"pairing1_names"`
	Pairing2Names string  `json:"pairing2_names"`
	WinnerNames   *string `json:"winner_names"`
}
