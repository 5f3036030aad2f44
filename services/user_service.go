package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
)

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID int) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) (*models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	user.PasswordHash = ""
	return user, nil
}

// ListByRole returns every user holding the given role, for admin pickers
// (assigning a manager to a team, a user to a player profile).
func (s *userService) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with role %s: %w", role, err)
	}
	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrUserEmailConflict):
			return nil, ErrUserEmailConflict
		case errors.Is(err, repositories.ErrUserUsernameConflict):
			return nil, ErrUserUsernameConflict
		}
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return user, nil
}
