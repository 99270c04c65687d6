package repository

import (
	"context"
	"errors"

	"sports-admin-service/internal/repository/model"
)

// ErrNotFound is returned by Get* lookups that match no record.
var ErrNotFound = errors.New("record not found")

// Repository is the back-office data store. Create methods assign the next
// monotonic id for the collection (starting at 1) and a creation timestamp
// when the record carries none, mutating the passed record in place. No
// update or delete operations exist; records are create/read only.
type Repository interface {
	ListTeams(ctx context.Context) ([]*model.Team, error)
	GetTeamByID(ctx context.Context, id int64) (*model.Team, error)
	CreateTeam(ctx context.Context, team *model.Team) error

	ListMatches(ctx context.Context) ([]*model.Match, error)
	GetMatchByID(ctx context.Context, id int64) (*model.Match, error)
	CreateMatch(ctx context.Context, match *model.Match) error

	ListTournaments(ctx context.Context) ([]*model.Tournament, error)
	CreateTournament(ctx context.Context, tournament *model.Tournament) error

	ListPrograms(ctx context.Context) ([]*model.Program, error)
	CreateProgram(ctx context.Context, program *model.Program) error

	ListCoaches(ctx context.Context) ([]*model.Coach, error)
	CreateCoach(ctx context.Context, coach *model.Coach) error

	ListCamps(ctx context.Context) ([]*model.Camp, error)
	CreateCamp(ctx context.Context, camp *model.Camp) error

	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error

	ListRoles(ctx context.Context) ([]*model.Role, error)
	GetRoleByID(ctx context.Context, id int64) (*model.Role, error)
	CreateRole(ctx context.Context, role *model.Role) error

	// ListActivities returns activities newest first.
	ListActivities(ctx context.Context) ([]*model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) error
}
