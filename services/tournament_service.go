package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/realtime"
	"github.com/Dosada05/card-league/repositories"
	"github.com/Dosada05/card-league/schedule"
)

type CreateTournamentInput struct {
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
}

// RotationPreview shows the pairings a tournament for the period would get
// with the current roster.
type RotationPreview struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	SequenceNumber int              `json:"sequence_number"`
	RoundIndex     int              `json:"round_index"` // 1..7
	Pairings       []models.Pairing `json:"pairings"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, year *int) ([]models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
	PreviewRotation(ctx context.Context, year, month int) (*RotationPreview, error)
}

type tournamentService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	pairingRepo    repositories.PairingRepository
	gameRepo       repositories.GameRepository
	broadcaster    Broadcaster
	logger         *slog.Logger
}

func NewTournamentService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	pairingRepo repositories.PairingRepository,
	gameRepo repositories.GameRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) TournamentService {
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		pairingRepo:    pairingRepo,
		gameRepo:       gameRepo,
		broadcaster:    broadcaster,
		logger:         logger,
	}
}

// CreateTournament stores the tournament together with its four pairings
// and 18 games in one transaction. The pairings come from the rotation
// round selected by the period's sequence number.
func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	sequence, err := schedule.SequenceNumber(input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}

	name := normalizeName(input.Name)
	if name == "" {
		name = DefaultTournamentName(input.Year, input.Month)
	}

	existing, err := s.tournamentRepo.GetByPeriod(ctx, input.Year, input.Month)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %d-%02d (tournament %d)", ErrDuplicateTournament, input.Year, input.Month, existing.ID)
	}
	if err != nil && !errors.Is(err, repositories.ErrTournamentNotFound) {
		return nil, fmt.Errorf("failed to check existing tournament: %w", err)
	}

	tournament := &models.Tournament{
		Name:           name,
		Year:           input.Year,
		Month:          input.Month,
		SequenceNumber: sequence,
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		roster, txErr := s.playerRepo.ListIDs(ctx, exec)
		if txErr != nil {
			return fmt.Errorf("failed to read roster: %w", txErr)
		}
		round, txErr := schedule.RoundForSequence(roster, sequence)
		if txErr != nil {
			if errors.Is(txErr, schedule.ErrInvalidRoster) {
				return fmt.Errorf("%w: %w", ErrRosterIncomplete, txErr)
			}
			return txErr
		}

		if txErr = s.tournamentRepo.Create(ctx, exec, tournament); txErr != nil {
			return txErr
		}

		createdIDs := make([]int, 0, schedule.PairingsPerTournament)
		for _, pair := range round.Pairs() {
			pairing := &models.Pairing{
				TournamentID: tournament.ID,
				Player1ID:    pair.A,
				Player2ID:    pair.B,
			}
			if txErr = s.pairingRepo.Create(ctx, exec, pairing); txErr != nil {
				return fmt.Errorf("failed to create pairing %s: %w", pair, txErr)
			}
			createdIDs = append(createdIDs, pairing.ID)
		}

		fixtures, txErr := schedule.GenerateGames(createdIDs)
		if txErr != nil {
			return txErr
		}
		for _, fixture := range fixtures {
			game := fixture.Game(tournament.ID)
			if txErr = s.gameRepo.Create(ctx, exec, &game); txErr != nil {
				return fmt.Errorf("failed to create game: %w", txErr)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentPeriodConflict):
			return nil, fmt.Errorf("%w: %d-%02d", ErrDuplicateTournament, input.Year, input.Month)
		case errors.Is(err, repositories.ErrTournamentInvalidPeriod):
			return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "tournament created",
		slog.Int("tournament_id", tournament.ID),
		slog.Int("year", tournament.Year),
		slog.Int("month", tournament.Month),
		slog.Int("sequence_number", tournament.SequenceNumber),
	)

	pairings, err := s.pairingRepo.ListByTournament(ctx, tournament.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings of new tournament: %w", err)
	}
	tournament.Pairings = pairings
	return tournament, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTournamentRepoError(err, id)
	}
	pairings, err := s.pairingRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings for tournament %d: %w", id, err)
	}
	tournament.Pairings = pairings
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, year *int) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{Year: year})
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	if len(tournaments) == 0 {
		return tournaments, nil
	}

	pairings, err := s.pairingRepo.ListByTournaments(ctx, tournamentIDs(tournaments))
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings of listed tournaments: %w", err)
	}
	byTournament := make(map[int][]models.Pairing, len(tournaments))
	for _, p := range pairings {
		byTournament[p.TournamentID] = append(byTournament[p.TournamentID], p)
	}
	for i := range tournaments {
		tournaments[i].Pairings = byTournament[tournaments[i].ID]
		if tournaments[i].Pairings == nil {
			tournaments[i].Pairings = []models.Pairing{}
		}
	}
	return tournaments, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.gameRepo.DeleteByTournament(ctx, exec, id); err != nil {
			return err
		}
		if err := s.pairingRepo.DeleteByTournament(ctx, exec, id); err != nil {
			return err
		}
		return s.tournamentRepo.Delete(ctx, exec, id)
	})
	if err != nil {
		return mapTournamentRepoError(err, id)
	}

	s.logger.InfoContext(ctx, "tournament deleted", slog.Int("tournament_id", id))
	s.broadcaster.BroadcastToRoom(realtime.TournamentRoom(id), realtime.Message{
		Type:    realtime.MessageTournamentDeleted,
		Payload: map[string]int{"tournament_id": id},
	})
	return nil
}

func (s *tournamentService) PreviewRotation(ctx context.Context, year, month int) (*RotationPreview, error) {
	sequence, err := schedule.SequenceNumber(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	names := make(map[int]string, len(players))
	roster := make([]int, len(players))
	for i, p := range players {
		names[p.ID] = p.Name
		roster[i] = p.ID
	}

	round, err := schedule.RoundForSequence(roster, sequence)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRoster) {
			return nil, fmt.Errorf("%w: %w", ErrRosterIncomplete, err)
		}
		return nil, err
	}

	preview := &RotationPreview{
		Year:           year,
		Month:          month,
		SequenceNumber: sequence,
		RoundIndex:     (sequence-1)%schedule.RoundCount + 1,
		Pairings:       make([]models.Pairing, 0, schedule.PairsPerRound),
	}
	for _, pair := range round.Pairs() {
		preview.Pairings = append(preview.Pairings, models.Pairing{
			Player1ID:   pair.A,
			Player2ID:   pair.B,
			Player1Name: names[pair.A],
			Player2Name: names[pair.B],
		})
	}
	return preview, nil
}

func mapTournamentRepoError(err error, id int) error {
	if errors.Is(err, repositories.ErrTournamentNotFound) {
		return fmt.Errorf("%w: id %d", ErrTournamentNotFound, id)
	}
	return fmt.Errorf("tournament %d: %w", id, err)
}
