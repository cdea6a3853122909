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
	ErrGameNotFound       = errors.New("game not found")
	ErrGameWinnerInvalid  = errors.New("game winner must be one of the two pairings")
	ErrGamePairingInvalid = errors.New("game references an unknown pairing")
)

type GameRepository interface {
	Create(ctx context.Context, exec SQLExecutor, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Game, error)
	ListByTournaments(ctx context.Context, tournamentIDs []int) ([]models.Game, error)
	UpdateWinner(ctx context.Context, id int, winnerPairingID *int) error
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresGameRepository) Create(ctx context.Context, exec SQLExecutor, g *models.Game) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO games (tournament_id, pairing1_id, pairing2_id, round_number, winner_pairing_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := executor.QueryRowContext(ctx, query,
		g.TournamentID, g.Pairing1ID, g.Pairing2ID, g.RoundNumber, g.WinnerPairingID,
	).Scan(&g.ID)
	return r.handleGameError(err)
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `
		SELECT id, tournament_id, pairing1_id, pairing2_id, round_number, winner_pairing_id
		FROM games
		WHERE id = $1`
	g := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.TournamentID, &g.Pairing1ID, &g.Pairing2ID, &g.RoundNumber, &g.WinnerPairingID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to scan game by id %d: %w", id, err)
	}
	return g, nil
}

func (r *postgresGameRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Game, error) {
	query := `
		SELECT id, tournament_id, pairing1_id, pairing2_id, round_number, winner_pairing_id
		FROM games
		WHERE tournament_id = $1
		ORDER BY round_number ASC, id ASC`
	return r.query(ctx, query, tournamentID)
}

func (r *postgresGameRepository) ListByTournaments(ctx context.Context, tournamentIDs []int) ([]models.Game, error) {
	if len(tournamentIDs) == 0 {
		return []models.Game{}, nil
	}
	query := `
		SELECT id, tournament_id, pairing1_id, pairing2_id, round_number, winner_pairing_id
		FROM games
		WHERE tournament_id = ANY($1)
		ORDER BY tournament_id ASC, id ASC`
	return r.query(ctx, query, pq.Array(tournamentIDs))
}

func (r *postgresGameRepository) UpdateWinner(ctx context.Context, id int, winnerPairingID *int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE games SET winner_pairing_id = $1 WHERE id = $2`, winnerPairingID, id)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM games WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete games of tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (r *postgresGameRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if scanErr := rows.Scan(
			&g.ID, &g.TournamentID, &g.Pairing1ID, &g.Pairing2ID, &g.RoundNumber, &g.WinnerPairingID,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", scanErr)
		}
		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during game rows iteration: %w", err)
	}
	return games, nil
}

func (r *postgresGameRepository) handleGameError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr := asPQError(err); pqErr != nil {
		switch pqErr.Code {
		case pqCheckViolation:
			if pqErr.Constraint == "games_winner_check" {
				return ErrGameWinnerInvalid
			}
		case pqForeignKeyViolation:
			return ErrGamePairingInvalid
		}
	}
	return err
}
