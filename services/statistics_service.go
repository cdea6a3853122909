package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/repositories"
	"github.com/Dosada05/card-league/schedule"
	"github.com/Dosada05/card-league/scoring"
	"golang.org/x/sync/errgroup"
)

type StatisticsService interface {
	TournamentScores(ctx context.Context, tournamentID int) ([]scoring.PairingStanding, error)
	YearlyStandings(ctx context.Context, year int) ([]scoring.PlayerStanding, error)
	PlayerYear(ctx context.Context, playerID, year int) (*scoring.PlayerYearDetails, error)
}

type statisticsService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	pairingRepo    repositories.PairingRepository
	gameRepo       repositories.GameRepository
}

func NewStatisticsService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	pairingRepo repositories.PairingRepository,
	gameRepo repositories.GameRepository,
) StatisticsService {
	return &statisticsService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		pairingRepo:    pairingRepo,
		gameRepo:       gameRepo,
	}
}

type yearData struct {
	players     []models.Player
	tournaments []models.Tournament
	pairings    []models.Pairing
	games       []models.Game
}

func (s *statisticsService) TournamentScores(ctx context.Context, tournamentID int) ([]scoring.PairingStanding, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, mapTournamentRepoError(err, tournamentID)
	}

	var pairings []models.Pairing
	var games []models.Game
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pairings, err = s.pairingRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load tournament %d results: %w", tournamentID, err)
	}

	return scoring.TournamentStandings(tournamentID, pairings, games), nil
}

func (s *statisticsService) YearlyStandings(ctx context.Context, year int) ([]scoring.PlayerStanding, error) {
	if err := schedule.ValidatePeriod(year, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}
	data, err := s.loadYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return scoring.YearlyStandings(year, data.players, data.tournaments, data.pairings, data.games), nil
}

func (s *statisticsService) PlayerYear(ctx context.Context, playerID, year int) (*scoring.PlayerYearDetails, error) {
	if err := schedule.ValidatePeriod(year, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, mapPlayerRepoError(err, playerID)
	}
	data, err := s.loadYear(ctx, year)
	if err != nil {
		return nil, err
	}
	details := scoring.PlayerYear(*player, year, data.tournaments, data.pairings, data.games)
	return &details, nil
}

// loadYear reads the players and the year's tournaments in parallel, then the
// pairings and games of those tournaments in parallel.
func (s *statisticsService) loadYear(ctx context.Context, year int) (*yearData, error) {
	data := &yearData{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.players, err = s.playerRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		data.tournaments, err = s.tournamentRepo.List(gCtx, repositories.ListTournamentsFilter{Year: &year})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load statistics for %d: %w", year, err)
	}

	ids := tournamentIDs(data.tournaments)
	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.pairings, err = s.pairingRepo.ListByTournaments(gCtx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		data.games, err = s.gameRepo.ListByTournaments(gCtx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load results for %d: %w", year, err)
	}
	return data, nil
}
