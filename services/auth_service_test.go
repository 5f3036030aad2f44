package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/repositories"
)

type fakeUserRepo struct {
	nextID int
	users  map[int]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
		if existing.Username == user.Username {
			return repositories.ErrUserUsernameConflict
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[stored.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for id := 1; id < f.nextID; id++ {
		user, ok := f.users[id]
		if !ok || user.Role != role {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Dana Keeper",
		Username: "dkeeper",
		Email:    "dana@example.com",
		Password: "correct horse",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the player role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		user, err := svc.Register(ctx, registerInput())
		require.NoError(t, err)
		assert.Equal(t, models.RolePlayer, user.Role)
		assert.NotZero(t, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("accepts an explicit role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		input := registerInput()
		input.Role = models.RoleReferee
		user, err := svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, models.RoleReferee, user.Role)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		input := registerInput()
		input.Role = "commissioner"
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		input := registerInput()
		input.Password = "short"
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("requires a name", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		input := registerInput()
		input.Name = ""
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("maps duplicate email to a conflict", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		_, err := svc.Register(ctx, registerInput())
		require.NoError(t, err)

		duplicate := registerInput()
		duplicate.Username = "other"
		_, err = svc.Register(ctx, duplicate)
		assert.ErrorIs(t, err, ErrUserEmailConflict)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{Username: "dkeeper", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "dana@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{Email: "dana@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "dkeeper", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "dkeeper", Password: "wrong horse"})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "nobody", Password: "correct horse"})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})

	t.Run("no identifier", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Password: "correct horse"})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})
}
