package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/card-league/models"
	"github.com/lib/pq"
)

var (
	ErrPairingNotFound       = errors.New("pairing not found")
	ErrPairingPlayerInvalid  = errors.New("pairing references an unknown player")
	ErrPairingOrderViolation = errors.New("pairing players must be stored lower id first")
)

type PairingRepository interface {
	Create(ctx context.Context, exec SQLExecutor, pairing *models.Pairing) error
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Pairing, error)
	ListByTournaments(ctx context.Context, tournamentIDs []int) ([]models.Pairing, error)
	ExistsForPlayer(ctx context.Context, playerID int) (bool, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresPairingRepository struct {
	db *sql.DB
}

func NewPostgresPairingRepository(db *sql.DB) PairingRepository {
	return &postgresPairingRepository{db: db}
}

func (r *postgresPairingRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const pairingSelect = `
		SELECT pr.id, pr.tournament_id, pr.player1_id, pr.player2_id, p1.name, p2.name
		FROM pairings pr
		JOIN players p1 ON p1.id = pr.player1_id
		JOIN players p2 ON p2.id = pr.player2_id`

func (r *postgresPairingRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Pairing) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO pairings (tournament_id, player1_id, player2_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := executor.QueryRowContext(ctx, query, p.TournamentID, p.Player1ID, p.Player2ID).Scan(&p.ID)
	return r.handlePairingError(err)
}

func (r *postgresPairingRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Pairing, error) {
	query := pairingSelect + ` WHERE pr.tournament_id = $1 ORDER BY pr.id ASC`
	return r.query(ctx, query, tournamentID)
}

func (r *postgresPairingRepository) ListByTournaments(ctx context.Context, tournamentIDs []int) ([]models.Pairing, error) {
	if len(tournamentIDs) == 0 {
		return []models.Pairing{}, nil
	}
	query := pairingSelect + ` WHERE pr.tournament_id = ANY($1) ORDER BY pr.tournament_id ASC, pr.id ASC`
	return r.query(ctx, query, pq.Array(tournamentIDs))
}

func (r *postgresPairingRepository) ExistsForPlayer(ctx context.Context, playerID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM pairings WHERE player1_id = $1 OR player2_id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, playerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pairings of player %d: %w", playerID, err)
	}
	return exists, nil
}

func (r *postgresPairingRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM pairings WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete pairings of tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (r *postgresPairingRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Pairing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairings: %w", err)
	}
	defer rows.Close()

	pairings := make([]models.Pairing, 0)
	for rows.Next() {
		var p models.Pairing
		if scanErr := rows.Scan(&p.ID, &p.TournamentID, &p.Player1ID, &p.Player2ID, &p.Player1Name, &p.Player2Name); scanErr != nil {
			return nil, fmt.Errorf("failed to scan pairing row: %w", scanErr)
		}
		pairings = append(pairings, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during pairing rows iteration: %w", err)
	}
	return pairings, nil
}

func (r *postgresPairingRepository) handlePairingError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr := asPQError(err); pqErr != nil {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			switch pqErr.Constraint {
			case "pairings_player1_id_fkey", "pairings_player2_id_fkey":
				return ErrPairingPlayerInvalid
			case "pairings_tournament_id_fkey":
				return ErrTournamentNotFound
			}
		case pqCheckViolation:
			return ErrPairingOrderViolation
		}
	}
	return err
}
