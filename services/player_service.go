package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/repositories"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, name string) (*models.Player, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo  repositories.PlayerRepository
	pairingRepo repositories.PairingRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository, pairingRepo repositories.PairingRepository) PlayerService {
	return &playerService{
		playerRepo:  playerRepo,
		pairingRepo: pairingRepo,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, fmt.Errorf("%w: %q", ErrPlayerNameConflict, name)
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapPlayerRepoError(err, id)
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// DeletePlayer refuses to remove a player who appears in any pairing, so
// historical results keep their names.
func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	if _, err := s.playerRepo.GetByID(ctx, id); err != nil {
		return mapPlayerRepoError(err, id)
	}

	inUse, err := s.pairingRepo.ExistsForPlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check player references: %w", err)
	}
	if inUse {
		return fmt.Errorf("%w: player %d", ErrPlayerInUse, id)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return mapPlayerRepoError(err, id)
	}
	return nil
}

func mapPlayerRepoError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	case errors.Is(err, repositories.ErrPlayerInUse):
		return fmt.Errorf("%w: player %d", ErrPlayerInUse, id)
	default:
		return fmt.Errorf("player %d: %w", id, err)
	}
}
