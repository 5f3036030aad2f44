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

type CreateStadiumInput struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	ManagerID *int   `json:"manager_id"`
}

type UpdateStadiumInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type StadiumService interface {
	Create(ctx context.Context, input CreateStadiumInput) (*models.Stadium, error)
	GetByID(ctx context.Context, id int) (*models.Stadium, error)
	List(ctx context.Context) ([]*models.Stadium, error)
	ListManagedBy(ctx context.Context, managerID int) ([]*models.Stadium, error)
	Update(ctx context.Context, requester Requester, id int, input UpdateStadiumInput) (*models.Stadium, error)
	UploadPhoto(ctx context.Context, requester Requester, id int, contentType string, file io.Reader) (*models.Stadium, error)
}

type stadiumService struct {
	stadiumRepo repositories.StadiumRepository
	uploader    storage.FileUploader
}

func NewStadiumService(stadiumRepo repositories.StadiumRepository, uploader storage.FileUploader) StadiumService {
	return &stadiumService{
		stadiumRepo: stadiumRepo,
		uploader:    uploader,
	}
}

func (s *stadiumService) Create(ctx context.Context, input CreateStadiumInput) (*models.Stadium, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrStadiumNameRequired
	}

	stadium := &models.Stadium{
		Name:      strings.TrimSpace(input.Name),
		Location:  input.Location,
		Capacity:  input.Capacity,
		ManagerID: input.ManagerID,
	}

	if err := s.stadiumRepo.Create(ctx, stadium); err != nil {
		if errors.Is(err, repositories.ErrStadiumManagerInvalid) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}
	return s.withPhotoURL(stadium), nil
}

func (s *stadiumService) GetByID(ctx context.Context, id int) (*models.Stadium, error) {
	stadium, err := s.stadiumRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStadiumNotFound) {
			return nil, ErrStadiumNotFound
		}
		return nil, fmt.Errorf("failed to get stadium %d: %w", id, err)
	}
	return s.withPhotoURL(stadium), nil
}

func (s *stadiumService) List(ctx context.Context) ([]*models.Stadium, error) {
	stadiums, err := s.stadiumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}
	for _, stadium := range stadiums {
		s.withPhotoURL(stadium)
	}
	return stadiums, nil
}

func (s *stadiumService) ListManagedBy(ctx context.Context, managerID int) ([]*models.Stadium, error) {
	stadiums, err := s.stadiumRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums managed by user %d: %w", managerID, err)
	}
	for _, stadium := range stadiums {
		s.withPhotoURL(stadium)
	}
	return stadiums, nil
}

func (s *stadiumService) Update(ctx context.Context, requester Requester, id int, input UpdateStadiumInput) (*models.Stadium, error) {
	stadium, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, stadium); err != nil {
		return nil, err
	}

	if input.Name != "" {
		stadium.Name = input.Name
	}
	if input.Location != "" {
		stadium.Location = input.Location
	}
	if input.Capacity > 0 {
		stadium.Capacity = input.Capacity
	}

	if err := s.stadiumRepo.Update(ctx, stadium); err != nil {
		if errors.Is(err, repositories.ErrStadiumNotFound) {
			return nil, ErrStadiumNotFound
		}
		return nil, fmt.Errorf("failed to update stadium %d: %w", id, err)
	}
	return stadium, nil
}

func (s *stadiumService) UploadPhoto(ctx context.Context, requester Requester, id int, contentType string, file io.Reader) (*models.Stadium, error) {
	stadium, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureManages(requester, stadium); err != nil {
		return nil, err
	}

	ext, ok := imageExtension(contentType)
	if !ok {
		return nil, ErrUploadContentInvalid
	}

	key := fmt.Sprintf("stadiums/%d/photo%s", id, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo for stadium %d: %w", id, err)
	}

	if err := s.stadiumRepo.UpdatePhotoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store photo key for stadium %d: %w", id, err)
	}

	stadium.PhotoKey = &result.Key
	return s.withPhotoURL(stadium), nil
}

func (s *stadiumService) ensureManages(requester Requester, stadium *models.Stadium) error {
	if requester.IsLeagueAdmin() {
		return nil
	}
	if requester.Role == models.RoleStadiumManager &&
		stadium.ManagerID != nil && *stadium.ManagerID == requester.UserID {
		return nil
	}
	return ErrForbiddenOperation
}

func (s *stadiumService) withPhotoURL(stadium *models.Stadium) *models.Stadium {
	if stadium.PhotoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*stadium.PhotoKey)
		stadium.PhotoURL = &url
	}
	return stadium
}
