package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
)

type CreatePlayerInput struct {
	UserID   int    `json:"user_id"`
	TeamID   *int   `json:"team_id"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
}

type UpdatePlayerInput struct {
	Position string `json:"position"`
	Age      int    `json:"age"`
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
}

type PlayerService interface {
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]*models.Player, error)
	UpdateProfile(ctx context.Context, requester Requester, id int, input UpdatePlayerInput) (*models.Player, error)
	GetProfileByUser(ctx context.Context, userID int) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	player := &models.Player{
		UserID:   input.UserID,
		TeamID:   input.TeamID,
		Position: input.Position,
		Age:      input.Age,
		Height:   input.Height,
		Weight:   input.Weight,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrPlayerTeamInvalid):
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return s.GetByID(ctx, player.ID)
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]*models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *playerService) UpdateProfile(ctx context.Context, requester Requester, id int, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A player may only edit their own profile; league admins are unrestricted.
	if !requester.IsLeagueAdmin() && player.UserID != requester.UserID {
		return nil, ErrForbiddenOperation
	}

	player.Position = input.Position
	player.Age = input.Age
	player.Height = input.Height
	player.Weight = input.Weight

	if err := s.playerRepo.UpdateProfile(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return player, nil
}

func (s *playerService) GetProfileByUser(ctx context.Context, userID int) (*models.Player, error) {
	player, err := s.playerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player profile of user %d: %w", userID, err)
	}
	return player, nil
}
