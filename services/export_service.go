package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/repositories"
	"github.com/Dosada05/card-league/scoring"
	"github.com/Dosada05/card-league/storage"
	"github.com/google/uuid"
)

// ResultSheet is the archived form of a tournament.
type ResultSheet struct {
	Tournament models.Tournament         `json:"tournament"`
	Games      []models.GameView         `json:"games"`
	Standings  []scoring.PairingStanding `json:"standings"`
	ExportedAt time.Time                 `json:"exported_at"`
}

type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService interface {
	ExportTournament(ctx context.Context, tournamentID int) (*ExportResult, error)
}

type exportService struct {
	tournamentRepo repositories.TournamentRepository
	pairingRepo    repositories.PairingRepository
	gameRepo       repositories.GameRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
	now            func() time.Time
}

// NewExportService accepts a nil uploader; exports then fail with ErrExportUnavailable.
func NewExportService(
	tournamentRepo repositories.TournamentRepository,
	pairingRepo repositories.PairingRepository,
	gameRepo repositories.GameRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{
		tournamentRepo: tournamentRepo,
		pairingRepo:    pairingRepo,
		gameRepo:       gameRepo,
		uploader:       uploader,
		logger:         logger,
		now:            time.Now,
	}
}

func exportKey(tournamentID int) string {
	return fmt.Sprintf("exports/tournaments/%d/%s.json", tournamentID, uuid.NewString())
}

func (s *exportService) ExportTournament(ctx context.Context, tournamentID int) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, mapTournamentRepoError(err, tournamentID)
	}
	pairings, err := s.pairingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairings: %w", err)
	}
	games, err := s.gameRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	tournament.Pairings = pairings

	sheet := ResultSheet{
		Tournament: *tournament,
		Games:      toGameViews(games, pairings),
		Standings:  scoring.TournamentStandings(tournamentID, pairings, games),
		ExportedAt: s.now().UTC(),
	}
	body, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result sheet: %w", err)
	}

	upload, err := s.uploader.Upload(ctx, exportKey(tournamentID), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload result sheet: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament exported",
		slog.Int("tournament_id", tournamentID),
		slog.String("key", upload.Key),
	)
	return &ExportResult{Key: upload.Key, URL: upload.Location}, nil
}
