package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
	"github.com/footylab/league-system/storage"
)

type CreateTeamInput struct {
	Name      string `json:"name"`
	ManagerID *int   `json:"manager_id"`
	Formation string `json:"formation"`
	Strategy  string `json:"strategy"`
}

type UpdateTeamInput struct {
	Name      string `json:"name"`
	Formation string `json:"formation"`
	Strategy  string `json:"strategy"`
}

type TeamService interface {
	Create(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Update(ctx context.Context, requester Requester, id int, input UpdateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error
	ListPlayers(ctx context.Context, teamID int) ([]*models.Player, error)
	AddPlayer(ctx context.Context, requester Requester, teamID, playerID int) (*models.Player, error)
	RemovePlayer(ctx context.Context, requester Requester, teamID, playerID int) (*models.Player, error)
	UploadCrest(ctx context.Context, requester Requester, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, playerRepo repositories.PlayerRepository, uploader storage.FileUploader) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		Name:      strings.TrimSpace(input.Name),
		ManagerID: input.ManagerID,
		Formation: input.Formation,
		Strategy:  input.Strategy,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return s.withCrestURL(team), nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return s.withCrestURL(team), nil
}

func (s *teamService) List(ctx context.Context) ([]*models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for _, team := range teams {
		s.withCrestURL(team)
	}
	return teams, nil
}

func (s *teamService) Update(ctx context.Context, requester Requester, id int, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, team); err != nil {
		return nil, err
	}

	if input.Name != "" {
		team.Name = input.Name
	}
	if input.Formation != "" {
		team.Formation = input.Formation
	}
	if input.Strategy != "" {
		team.Strategy = input.Strategy
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}

func (s *teamService) ListPlayers(ctx context.Context, teamID int) ([]*models.Player, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players of team %d: %w", teamID, err)
	}
	return players, nil
}

func (s *teamService) AddPlayer(ctx context.Context, requester Requester, teamID, playerID int) (*models.Player, error) {
	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, team); err != nil {
		return nil, err
	}

	if err := s.playerRepo.UpdateTeam(ctx, playerID, &teamID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to assign player %d to team %d: %w", playerID, teamID, err)
	}
	return s.playerByID(ctx, playerID)
}

func (s *teamService) RemovePlayer(ctx context.Context, requester Requester, teamID, playerID int) (*models.Player, error) {
	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, team); err != nil {
		return nil, err
	}

	player, err := s.playerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.TeamID == nil || *player.TeamID != teamID {
		return nil, ErrPlayerNotInTeam
	}

	if err := s.playerRepo.UpdateTeam(ctx, playerID, nil); err != nil {
		return nil, fmt.Errorf("failed to remove player %d from team %d: %w", playerID, teamID, err)
	}
	player.TeamID = nil
	player.TeamName = nil
	return player, nil
}

func (s *teamService) UploadCrest(ctx context.Context, requester Requester, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, team); err != nil {
		return nil, err
	}

	ext, ok := imageExtension(contentType)
	if !ok {
		return nil, ErrUploadContentInvalid
	}

	key := fmt.Sprintf("teams/%d/crest%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload crest for team %d: %w", teamID, err)
	}

	if err := s.teamRepo.UpdateCrestKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store crest key for team %d: %w", teamID, err)
	}

	team.CrestKey = &result.Key
	return s.withCrestURL(team), nil
}

// ensureManages allows league admins through and team managers only for the
// team they manage.
func (s *teamService) ensureManages(requester Requester, team *models.Team) error {
	if requester.IsLeagueAdmin() {
		return nil
	}
	if requester.Role == models.RoleTeamManager &&
		team.ManagerID != nil && *team.ManagerID == requester.UserID {
		return nil
	}
	return ErrForbiddenOperation
}

func (s *teamService) playerByID(ctx context.Context, playerID int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", playerID, err)
	}
	return player, nil
}

func (s *teamService) withCrestURL(team *models.Team) *models.Team {
	if team.CrestKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*team.CrestKey)
		team.CrestURL = &url
	}
	return team
}

func imageExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg":
		return ".jpg", true
	case "image/webp":
		return ".webp", true
	case "image/svg+xml":
		return ".svg", true
	}
	return "", false
}
