package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footylab/league-system/models"
)

func TestUserServiceListByRole(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(ctx, &models.User{
		Name: "Avery Coach", Username: "acoach", Email: "avery@example.com",
		Role: models.RoleTeamManager, PasswordHash: "x",
	}))
	require.NoError(t, repo.Create(ctx, &models.User{
		Name: "Blair Striker", Username: "bstriker", Email: "blair@example.com",
		Role: models.RolePlayer, PasswordHash: "x",
	}))
	require.NoError(t, repo.Create(ctx, &models.User{
		Name: "Casey Coach", Username: "ccoach", Email: "casey@example.com",
		Role: models.RoleTeamManager, PasswordHash: "x",
	}))

	svc := NewUserService(repo)

	t.Run("filters to the requested role", func(t *testing.T) {
		managers, err := svc.ListByRole(ctx, models.RoleTeamManager)
		require.NoError(t, err)
		require.Len(t, managers, 2)
		assert.Equal(t, "acoach", managers[0].Username)
		assert.Equal(t, "ccoach", managers[1].Username)
		for _, m := range managers {
			assert.Empty(t, m.PasswordHash)
		}

		players, err := svc.ListByRole(ctx, models.RolePlayer)
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "bstriker", players[0].Username)
	})

	t.Run("no users with the role", func(t *testing.T) {
		referees, err := svc.ListByRole(ctx, models.RoleReferee)
		require.NoError(t, err)
		assert.Empty(t, referees)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := svc.ListByRole(ctx, "commissioner")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}
