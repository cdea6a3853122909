package handlers

import (
	"context"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/scoring"
	"github.com/Dosada05/card-league/services"
)

type stubPlayerService struct {
	createFn func(name string) (*models.Player, error)
	getFn    func(id int) (*models.Player, error)
	deleteFn func(id int) error
	players  []models.Player
}

func (s *stubPlayerService) CreatePlayer(_ context.Context, name string) (*models.Player, error) {
	return s.createFn(name)
}
func (s *stubPlayerService) GetPlayer(_ context.Context, id int) (*models.Player, error) {
	return s.getFn(id)
}
func (s *stubPlayerService) ListPlayers(context.Context) ([]models.Player, error) {
	return s.players, nil
}
func (s *stubPlayerService) DeletePlayer(_ context.Context, id int) error {
	return s.deleteFn(id)
}

type stubTournamentService struct {
	createFn  func(in services.CreateTournamentInput) (*models.Tournament, error)
	getFn     func(id int) (*models.Tournament, error)
	listYear  *int
	deleteFn  func(id int) error
	previewFn func(year, month int) (*services.RotationPreview, error)
}

func (s *stubTournamentService) CreateTournament(_ context.Context, in services.CreateTournamentInput) (*models.Tournament, error) {
	return s.createFn(in)
}
func (s *stubTournamentService) GetTournament(_ context.Context, id int) (*models.Tournament, error) {
	return s.getFn(id)
}
func (s *stubTournamentService) ListTournaments(_ context.Context, year *int) ([]models.Tournament, error) {
	s.listYear = year
	return []models.Tournament{}, nil
}
func (s *stubTournamentService) DeleteTournament(_ context.Context, id int) error {
	return s.deleteFn(id)
}
func (s *stubTournamentService) PreviewRotation(_ context.Context, year, month int) (*services.RotationPreview, error) {
	return s.previewFn(year, month)
}

type stubGameService struct {
	setWinnerFn func(gameID int, winner *int) (*services.GameResult, error)
}

func (s *stubGameService) ListGames(context.Context, int) ([]models.GameView, error) {
	return []models.GameView{}, nil
}
func (s *stubGameService) SetWinner(_ context.Context, gameID int, winner *int) (*services.GameResult, error) {
	return s.setWinnerFn(gameID, winner)
}

type stubStatisticsService struct {
	yearlyFn func(year int) ([]scoring.PlayerStanding, error)
}

func (s *stubStatisticsService) TournamentScores(context.Context, int) ([]scoring.PairingStanding, error) {
	return []scoring.PairingStanding{}, nil
}
func (s *stubStatisticsService) YearlyStandings(_ context.Context, year int) ([]scoring.PlayerStanding, error) {
	return s.yearlyFn(year)
}
func (s *stubStatisticsService) PlayerYear(_ context.Context, playerID, year int) (*scoring.PlayerYearDetails, error) {
	return &scoring.PlayerYearDetails{PlayerID: playerID, Year: year}, nil
}

type stubExportService struct {
	err error
}

func (s *stubExportService) ExportTournament(_ context.Context, id int) (*services.ExportResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.ExportResult{Key: "exports/tournaments/1/x.json", URL: "https://files.example/x.json"}, nil
}

type stubAuthService struct {
	err error
}

func (s *stubAuthService) Login(context.Context, string) error {
	return s.err
}
