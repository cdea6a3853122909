package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestCheckAffectedRows(t *testing.T) {
	if err := checkAffectedRows(fakeResult{rows: 1}, ErrGameNotFound); err != nil {
		t.Errorf("one row: %v", err)
	}
	if err := checkAffectedRows(fakeResult{rows: 0}, ErrGameNotFound); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("zero rows: %v", err)
	}
	boom := errors.New("boom")
	if err := checkAffectedRows(fakeResult{err: boom}, ErrGameNotFound); !errors.Is(err, boom) {
		t.Errorf("driver error: %v", err)
	}
}

func pqErr(code, constraint string) error {
	return fmt.Errorf("exec: %w", &pq.Error{Code: pq.ErrorCode(code), Constraint: constraint})
}

func TestErrorTranslation(t *testing.T) {
	players := &postgresPlayerRepository{}
	tournaments := &postgresTournamentRepository{}
	pairings := &postgresPairingRepository{}
	games := &postgresGameRepository{}
	other := errors.New("connection reset")

	tests := []struct {
		name string
		got  error
		want error
	}{
		{"player name unique", players.handlePlayerError(pqErr(pqUniqueViolation, "players_name_key")), ErrPlayerNameConflict},
		{"player referenced", players.handlePlayerError(pqErr(pqForeignKeyViolation, "pairings_player1_id_fkey")), ErrPlayerInUse},
		{"player other", players.handlePlayerError(other), other},
		{"tournament period unique", tournaments.handleTournamentError(pqErr(pqUniqueViolation, "tournaments_year_month_key")), ErrTournamentPeriodConflict},
		{"tournament month check", tournaments.handleTournamentError(pqErr(pqCheckViolation, "tournaments_month_check")), ErrTournamentInvalidPeriod},
		{"pairing unknown player", pairings.handlePairingError(pqErr(pqForeignKeyViolation, "pairings_player2_id_fkey")), ErrPairingPlayerInvalid},
		{"pairing unknown tournament", pairings.handlePairingError(pqErr(pqForeignKeyViolation, "pairings_tournament_id_fkey")), ErrTournamentNotFound},
		{"pairing order", pairings.handlePairingError(pqErr(pqCheckViolation, "pairings_players_order_check")), ErrPairingOrderViolation},
		{"game winner check", games.handleGameError(pqErr(pqCheckViolation, "games_winner_check")), ErrGameWinnerInvalid},
		{"game unknown pairing", games.handleGameError(pqErr(pqForeignKeyViolation, "games_pairing1_id_fkey")), ErrGamePairingInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if players.handlePlayerError(nil) != nil || games.handleGameError(nil) != nil {
		t.Error("nil must stay nil")
	}
}
