package service

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// PlayerService handles player-related business logic
type PlayerService struct {
	playerRepo *repository.PlayerRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		playerRepo: repository.NewPlayerRepository(db),
	}
}

// GetPlayer retrieves a player by NFL ID.
func (s *PlayerService) GetPlayer(ctx context.Context, nflID int) (*store.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, nflID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}
	return player, nil
}

// SearchPlayers finds players by name fragment.
func (s *PlayerService) SearchPlayers(ctx context.Context, name string, limit int) ([]*store.Player, error) {
	players, err := s.playerRepo.Search(ctx, name, limit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	return players, nil
}
