package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"sports-admin-service/internal/messaging/notifier"
	"sports-admin-service/internal/repository"
	"sports-admin-service/internal/repository/model"
)

func (s *adminService) handleDashboard(w http.ResponseWriter, r *http.Request) {
	teams, err := s.repo.ListTeams(r.Context())
	if err != nil {
		s.internalError(w, "error listing teams", err)
		return
	}
	matches, err := s.repo.ListMatches(r.Context())
	if err != nil {
		s.internalError(w, "error listing matches", err)
		return
	}
	tournaments, err := s.repo.ListTournaments(r.Context())
	if err != nil {
		s.internalError(w, "error listing tournaments", err)
		return
	}
	users, err := s.repo.ListUsers(r.Context())
	if err != nil {
		s.internalError(w, "error listing users", err)
		return
	}
	activities, err := s.repo.ListActivities(r.Context())
	if err != nil {
		s.internalError(w, "error listing activities", err)
		return
	}
	if len(activities) > 10 {
		activities = activities[:10]
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"stats": map[string]int{
			"totalTeams":       len(teams),
			"totalMatches":     len(matches),
			"totalTournaments": len(tournaments),
			"totalUsers":       len(users),
		},
		"activities": activities,
	})
}

func (s *adminService) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.repo.ListTeams(r.Context())
	if err != nil {
		s.internalError(w, "error listing teams", err)
		return
	}
	s.writeJSON(w, http.StatusOK, teams)
}

func (s *adminService) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var team model.Team
	if !s.decode(w, r, &team) {
		return
	}

	if err := s.repo.CreateTeam(r.Context(), &team); err != nil {
		s.internalError(w, "error creating team", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, team)
}

func (s *adminService) handleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.repo.ListMatches(r.Context())
	if err != nil {
		s.internalError(w, "error listing matches", err)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

func (s *adminService) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var match model.Match
	if !s.decode(w, r, &match) {
		return
	}

	if err := s.repo.CreateMatch(r.Context(), &match); err != nil {
		s.internalError(w, "error creating match", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, match)
}

func (s *adminService) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	match, err := s.repo.GetMatchByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "match not found")
			return
		}
		s.internalError(w, "error getting match", err)
		return
	}
	s.writeJSON(w, http.StatusOK, match)
}

func (s *adminService) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := s.repo.ListTournaments(r.Context())
	if err != nil {
		s.internalError(w, "error listing tournaments", err)
		return
	}
	s.writeJSON(w, http.StatusOK, tournaments)
}

func (s *adminService) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	var tournament model.Tournament
	if !s.decode(w, r, &tournament) {
		return
	}

	if err := s.repo.CreateTournament(r.Context(), &tournament); err != nil {
		s.internalError(w, "error creating tournament", err)
		return
	}

	s.recordActivity(r, "CREATE", fmt.Sprintf("Tournament %q created", tournament.Name),
		model.EntityTypeTournament, tournament.ID)

	s.writeJSON(w, http.StatusCreated, tournament)
}

func (s *adminService) handleAcademy(w http.ResponseWriter, r *http.Request) {
	programs, err := s.repo.ListPrograms(r.Context())
	if err != nil {
		s.internalError(w, "error listing programs", err)
		return
	}
	coaches, err := s.repo.ListCoaches(r.Context())
	if err != nil {
		s.internalError(w, "error listing coaches", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"programs": programs,
		"coaches":  coaches,
		"stats": map[string]int{
			"totalPrograms": len(programs),
			"totalCoaches":  len(coaches),
		},
	})
}

func (s *adminService) handleListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := s.repo.ListCoaches(r.Context())
	if err != nil {
		s.internalError(w, "error listing coaches", err)
		return
	}
	s.writeJSON(w, http.StatusOK, coaches)
}

func (s *adminService) handleCreateCoach(w http.ResponseWriter, r *http.Request) {
	var coach model.Coach
	if !s.decode(w, r, &coach) {
		return
	}

	if err := s.repo.CreateCoach(r.Context(), &coach); err != nil {
		s.internalError(w, "error creating coach", err)
		return
	}

	s.recordActivity(r, "CREATE", fmt.Sprintf("Coach %q added", coach.Name),
		model.EntityTypeCoach, coach.ID)

	s.writeJSON(w, http.StatusCreated, coach)
}

// handleSFANext is the public upcoming-events feed: tournaments and camps
// that have not started yet.
func (s *adminService) handleSFANext(w http.ResponseWriter, r *http.Request) {
	tournaments, err := s.repo.ListTournaments(r.Context())
	if err != nil {
		s.internalError(w, "error listing tournaments", err)
		return
	}
	camps, err := s.repo.ListCamps(r.Context())
	if err != nil {
		s.internalError(w, "error listing camps", err)
		return
	}

	now := time.Now()
	upcomingTournaments := make([]*model.Tournament, 0)
	for _, t := range tournaments {
		if t.StartDate.After(now) {
			upcomingTournaments = append(upcomingTournaments, t)
		}
	}
	upcomingCamps := make([]*model.Camp, 0)
	for _, c := range camps {
		if c.StartDate.After(now) {
			upcomingCamps = append(upcomingCamps, c)
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"tournaments": upcomingTournaments,
		"camps":       upcomingCamps,
	})
}

func (s *adminService) handleListCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := s.repo.ListCamps(r.Context())
	if err != nil {
		s.internalError(w, "error listing camps", err)
		return
	}
	s.writeJSON(w, http.StatusOK, camps)
}

func (s *adminService) handleCreateCamp(w http.ResponseWriter, r *http.Request) {
	var camp model.Camp
	if !s.decode(w, r, &camp) {
		return
	}

	if err := s.repo.CreateCamp(r.Context(), &camp); err != nil {
		s.internalError(w, "error creating camp", err)
		return
	}

	s.recordActivity(r, "CREATE", fmt.Sprintf("Sports camp %q created", camp.Name),
		model.EntityTypeCamp, camp.ID)

	s.writeJSON(w, http.StatusCreated, camp)
}

func (s *adminService) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.repo.ListUsers(r.Context())
	if err != nil {
		s.internalError(w, "error listing users", err)
		return
	}
	s.writeJSON(w, http.StatusOK, users)
}

func (s *adminService) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if !s.decode(w, r, &user) {
		return
	}

	if err := s.repo.CreateUser(r.Context(), &user); err != nil {
		s.internalError(w, "error creating user", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, user)
}

func (s *adminService) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.repo.ListRoles(r.Context())
	if err != nil {
		s.internalError(w, "error listing roles", err)
		return
	}
	s.writeJSON(w, http.StatusOK, roles)
}

func (s *adminService) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var role model.Role
	if !s.decode(w, r, &role) {
		return
	}

	if err := s.repo.CreateRole(r.Context(), &role); err != nil {
		s.internalError(w, "error creating role", err)
		return
	}

	s.recordActivity(r, "CREATE", fmt.Sprintf("Role %q created", role.Name),
		model.EntityTypeRole, role.ID)

	if err := s.notif.RoleUpdate(r.Context(), &role, notifier.ChangeTypeCreate); err != nil {
		s.logger.Errorw("error sending role update notification", "error", err)
	}

	s.writeJSON(w, http.StatusCreated, role)
}

func (s *adminService) handlePermissionCatalog(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog)
}

// handlePermissionRoutes serves the derived route table so the client gate
// and this server share one source of truth.
func (s *adminService) handlePermissionRoutes(w http.ResponseWriter, _ *http.Request) {
	entries := s.routeTable.Entries()
	payload := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, map[string]any{
			"pattern":            e.Pattern,
			"allowedPermissions": e.Allowed,
			"isPublicRoute":      e.Public,
		})
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// recordActivity appends one audit entry for a mutation and notifies the
// event stream. Failures are logged, never surfaced to the caller.
func (s *adminService) recordActivity(r *http.Request, action, description, entityType string, entityID int64) {
	activity := &model.Activity{
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		Timestamp:   time.Now().UTC(),
		User:        actorLabel,
	}

	if err := s.repo.CreateActivity(r.Context(), activity); err != nil {
		s.logger.Errorw("error recording activity", "error", err, "entityType", entityType)
		return
	}

	if err := s.notif.ActivityCreated(r.Context(), activity); err != nil {
		s.logger.Errorw("error sending activity notification", "error", err)
	}
}

func (s *adminService) internalError(w http.ResponseWriter, msg string, err error) {
	s.logger.Errorw(msg, "error", err)
	s.writeError(w, http.StatusInternalServerError, "something went wrong")
}
