package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/card-league/models"
)

var (
	ErrTournamentNotFound       = errors.New("tournament not found")
	ErrTournamentPeriodConflict = errors.New("tournament for this year and month already exists")
	ErrTournamentInvalidPeriod  = errors.New("tournament month or sequence number out of range")
)

type ListTournamentsFilter struct {
	Year *int
}

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	GetByPeriod(ctx context.Context, year, month int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournaments (name, year, month, sequence_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query, t.Name, t.Year, t.Month, t.SequenceNumber).
		Scan(&t.ID, &t.CreatedAt)
	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, name, year, month, sequence_number, created_at
		FROM tournaments
		WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresTournamentRepository) GetByPeriod(ctx context.Context, year, month int) (*models.Tournament, error) {
	query := `
		SELECT id, name, year, month, sequence_number, created_at
		FROM tournaments
		WHERE year = $1 AND month = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, year, month))
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `
		SELECT id, name, year, month, sequence_number, created_at
		FROM tournaments
		WHERE 1=1`

	args := []interface{}{}
	argID := 1
	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argID)
		args = append(args, *filter.Year)
	}
	query += " ORDER BY year DESC, month DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.Year, &t.Month, &t.SequenceNumber, &t.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", scanErr)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) scanOne(row *sql.Row) (*models.Tournament, error) {
	t := &models.Tournament{}
	err := row.Scan(&t.ID, &t.Name, &t.Year, &t.Month, &t.SequenceNumber, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr := asPQError(err); pqErr != nil {
		switch pqErr.Code {
		case pqUniqueViolation:
			if pqErr.Constraint == "tournaments_year_month_key" {
				return ErrTournamentPeriodConflict
			}
		case pqCheckViolation:
			return ErrTournamentInvalidPeriod
		}
	}
	return err
}
