package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/realtime"
	"github.com/Dosada05/card-league/repositories"
	"github.com/Dosada05/card-league/scoring"
)

// GameResult is returned after a result change and pushed to the tournament room.
type GameResult struct {
	Game   models.GameView           `json:"game"`
	Scores []scoring.PairingStanding `json:"scores"`
}

type GameService interface {
	ListGames(ctx context.Context, tournamentID int) ([]models.GameView, error)
	// SetWinner records or clears (winner == nil) the result of a game.
	SetWinner(ctx context.Context, gameID int, winnerPairingID *int) (*GameResult, error)
}

type gameService struct {
	tournamentRepo repositories.TournamentRepository
	pairingRepo    repositories.PairingRepository
	gameRepo       repositories.GameRepository
	broadcaster    Broadcaster
	logger         *slog.Logger
}

func NewGameService(
	tournamentRepo repositories.TournamentRepository,
	pairingRepo repositories.PairingRepository,
	gameRepo repositories.GameRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) GameService {
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &gameService{
		tournamentRepo: tournamentRepo,
		pairingRepo:    pairingRepo,
		gameRepo:       gameRepo,
		broadcaster:    broadcaster,
		logger:         logger,
	}
}

func (s *gameService) ListGames(ctx context.Context, tournamentID int) ([]models.GameView, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, mapTournamentRepoError(err, tournamentID)
	}
	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	pairings, err := s.pairingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairings: %w", err)
	}
	return toGameViews(games, pairings), nil
}

func (s *gameService) SetWinner(ctx context.Context, gameID int, winnerPairingID *int) (*GameResult, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrGameNotFound, gameID)
		}
		return nil, fmt.Errorf("failed to load game %d: %w", gameID, err)
	}

	if err := scoring.ValidateWinner(*game, winnerPairingID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWinner, err)
	}

	if err := s.gameRepo.UpdateWinner(ctx, gameID, winnerPairingID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGameNotFound):
			return nil, fmt.Errorf("%w: id %d", ErrGameNotFound, gameID)
		case errors.Is(err, repositories.ErrGameWinnerInvalid):
			return nil, fmt.Errorf("%w: %w", ErrInvalidWinner, err)
		}
		return nil, fmt.Errorf("failed to update game %d: %w", gameID, err)
	}
	game.WinnerPairingID = winnerPairingID

	pairings, err := s.pairingRepo.ListByTournament(ctx, game.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairings: %w", err)
	}
	games, err := s.gameRepo.ListByTournament(ctx, game.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	result := &GameResult{
		Game:   toGameView(*game, pairingsByID(pairings)),
		Scores: scoring.TournamentStandings(game.TournamentID, pairings, games),
	}

	s.logger.InfoContext(ctx, "game result updated",
		slog.Int("game_id", gameID),
		slog.Int("tournament_id", game.TournamentID),
		slog.Any("winner_pairing_id", winnerPairingID),
	)
	s.broadcaster.BroadcastToRoom(realtime.TournamentRoom(game.TournamentID), realtime.Message{
		Type:    realtime.MessageGameUpdated,
		Payload: result,
	})
	return result, nil
}
