package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-admin-service/internal/repository/model"
)

func TestMemoryRepositoryAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := &model.Team{Name: "FC Barcelona", Sport: "Football"}
	require.NoError(t, repo.CreateTeam(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "FC Barcelona", first.Name)
	assert.Equal(t, "Football", first.Sport)
	assert.False(t, first.CreatedAt.IsZero())

	second := &model.Team{Name: "Mumbai Strikers", Sport: "Cricket"}
	require.NoError(t, repo.CreateTeam(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	// Counters are per collection: the first tournament starts back at 1.
	tournament := &model.Tournament{Name: "Summer League"}
	require.NoError(t, repo.CreateTournament(ctx, tournament))
	assert.Equal(t, int64(1), tournament.ID)
}

func TestMemoryRepositoryGetTeamByID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	team := &model.Team{Name: "FC Barcelona"}
	require.NoError(t, repo.CreateTeam(ctx, team))

	got, err := repo.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.Name, got.Name)

	_, err = repo.GetTeamByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryListOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, repo.CreateTeam(ctx, &model.Team{Name: name}))
	}

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{teams[0].ID, teams[1].ID, teams[2].ID})
}

func TestMemoryRepositoryActivitiesNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateActivity(ctx, &model.Activity{Description: desc}))
	}

	activities, err := repo.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "third", activities[0].Description)
	assert.Equal(t, "first", activities[2].Description)
	assert.False(t, activities[0].Timestamp.IsZero())
}

func TestMemoryRepositoryGetUserByEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &model.User{Name: "Admin", Email: "admin@sportsadmin.local"}))

	user, err := repo.GetUserByEmail(ctx, "admin@sportsadmin.local")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)

	_, err = repo.GetUserByEmail(ctx, "nobody@sportsadmin.local")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryRecordsAreCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	team := &model.Team{Name: "FC Barcelona"}
	require.NoError(t, repo.CreateTeam(ctx, team))

	// Mutating the caller's record after create must not affect the store.
	team.Name = "changed"

	got, err := repo.GetTeamByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "FC Barcelona", got.Name)
}

func TestSeed(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)
	assert.True(t, users[0].IsRootUser)

	roles, err := repo.ListRoles(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, roles)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, teams)
}
