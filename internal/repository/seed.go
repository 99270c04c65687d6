package repository

import (
	"context"
	"fmt"
	"time"

	"sports-admin-service/internal/menu"
	"sports-admin-service/internal/repository/model"
)

// Seed fills a fresh repository with development fixtures: a root admin, a
// viewer role and user, and a handful of domain records so every screen has
// something to show. Intended for the memory backend in development mode.
func Seed(ctx context.Context, repo Repository) error {
	viewerRole := &model.Role{
		Name: "Viewer",
		Permissions: []string{
			menu.PermissionString(menu.ActionView, "Dashboard"),
			menu.PermissionString(menu.ActionView, "Tournaments"),
			menu.PermissionString(menu.ActionView, "Academy"),
		},
	}
	if err := repo.CreateRole(ctx, viewerRole); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	users := []*model.User{
		{Name: "Admin", Email: "admin@sportsadmin.local", IsRootUser: true},
		{Name: "Viewer", Email: "viewer@sportsadmin.local", RoleID: viewerRole.ID},
	}
	for _, u := range users {
		if err := repo.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	teams := []*model.Team{
		{Name: "FC Barcelona", Sport: "Football", City: "Barcelona"},
		{Name: "Mumbai Strikers", Sport: "Cricket", City: "Mumbai"},
	}
	for _, t := range teams {
		if err := repo.CreateTeam(ctx, t); err != nil {
			return fmt.Errorf("failed to seed teams: %w", err)
		}
	}

	tournament := &model.Tournament{
		Name:      "Summer League",
		Sport:     "Football",
		Location:  "Bangalore",
		StartDate: time.Now().AddDate(0, 1, 0),
		EndDate:   time.Now().AddDate(0, 2, 0),
		Status:    "UPCOMING",
	}
	if err := repo.CreateTournament(ctx, tournament); err != nil {
		return fmt.Errorf("failed to seed tournaments: %w", err)
	}

	match := &model.Match{
		TournamentID: tournament.ID,
		HomeTeamID:   teams[0].ID,
		AwayTeamID:   teams[1].ID,
		Venue:        "National Stadium",
		StartsAt:     time.Now().AddDate(0, 1, 1),
		Status:       "SCHEDULED",
	}
	if err := repo.CreateMatch(ctx, match); err != nil {
		return fmt.Errorf("failed to seed matches: %w", err)
	}

	program := &model.Program{Name: "Youth Football", Sport: "Football", AgeGroup: "U-14"}
	if err := repo.CreateProgram(ctx, program); err != nil {
		return fmt.Errorf("failed to seed programs: %w", err)
	}

	coach := &model.Coach{Name: "Priya Nair", Sport: "Football", Experience: "8 years"}
	if err := repo.CreateCoach(ctx, coach); err != nil {
		return fmt.Errorf("failed to seed coaches: %w", err)
	}

	camp := &model.Camp{
		Name:      "Monsoon Cricket Camp",
		Location:  "Pune",
		Sport:     "Cricket",
		Capacity:  40,
		StartDate: time.Now().AddDate(0, 0, 14),
		EndDate:   time.Now().AddDate(0, 0, 21),
	}
	if err := repo.CreateCamp(ctx, camp); err != nil {
		return fmt.Errorf("failed to seed camps: %w", err)
	}

	return nil
}
