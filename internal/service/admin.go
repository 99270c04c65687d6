package service

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sports-admin-service/internal/menu"
	"sports-admin-service/internal/messaging/notifier"
	"sports-admin-service/internal/permission"
	"sports-admin-service/internal/repository"
)

// actorLabel is recorded on every activity entry. Authentication is mocked,
// so the audit log attributes mutations to a fixed actor.
const actorLabel = "System Admin"

type adminService struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
	notif  notifier.Notifier

	catalog    []permission.Option
	routeTable *permission.RouteTable
	gate       *permission.Gate

	sessions *sessionStore
}

func newAdminService(logger *zap.SugaredLogger, repo repository.Repository, notif notifier.Notifier,
	tree []menu.Node) *adminService {

	return &adminService{
		logger:     logger,
		repo:       repo,
		notif:      notif,
		catalog:    permission.BuildCatalog(tree, logger),
		routeTable: permission.BuildRouteTable(tree, logger),
		gate:       permission.NewGate(permission.NewRouteTable(apiRouteEntries())),
		sessions:   newSessionStore(),
	}
}

// Routes builds the chi router. Login and the public content feed are
// reachable unauthenticated; everything else passes the auth middleware and
// then the permission gate.
func (s *adminService) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)
		api.Get("/sfa-next", s.handleSFANext)

		api.Group(func(protected chi.Router) {
			protected.Use(s.requireAuth)
			protected.Use(s.requirePermission)

			protected.Post("/auth/logout", s.handleLogout)

			protected.Get("/dashboard", s.handleDashboard)

			protected.Get("/teams", s.handleListTeams)
			protected.Post("/teams", s.handleCreateTeam)

			protected.Get("/matches", s.handleListMatches)
			protected.Post("/matches", s.handleCreateMatch)
			protected.Get("/matches/{id}", s.handleGetMatch)

			protected.Get("/tournaments", s.handleListTournaments)
			protected.Post("/tournaments", s.handleCreateTournament)

			protected.Get("/academy", s.handleAcademy)
			protected.Get("/academy/coaches", s.handleListCoaches)
			protected.Post("/academy/coaches", s.handleCreateCoach)

			protected.Get("/sports-camps", s.handleListCamps)
			protected.Post("/sports-camps", s.handleCreateCamp)

			protected.Get("/users", s.handleListUsers)
			protected.Post("/users", s.handleCreateUser)

			protected.Get("/users/roles", s.handleListRoles)
			protected.Post("/users/roles", s.handleCreateRole)

			protected.Get("/permissions/catalog", s.handlePermissionCatalog)
			protected.Get("/permissions/routes", s.handlePermissionRoutes)
		})
	})

	return r
}

// apiRouteEntries is the server-side mirror of the client route table: the
// same intersection gate runs over these patterns as REST middleware, so
// the client gate is a rendering convenience rather than the only check.
func apiRouteEntries() []permission.RouteEntry {
	return []permission.RouteEntry{
		{Pattern: "/api/auth/logout", Public: true},
		{Pattern: "/api/dashboard", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Dashboard"),
		}},
		{Pattern: "/api/teams", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Tournaments"),
			menu.PermissionString(menu.ActionCreate, "Tournaments"),
		}},
		{Pattern: "/api/matches", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Tournaments"),
			menu.PermissionString(menu.ActionCreate, "Tournaments"),
		}},
		{Pattern: "/api/matches/:id", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Tournaments"),
			menu.PermissionString(menu.ActionCreate, "Tournaments"),
		}},
		{Pattern: "/api/tournaments", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Tournaments"),
			menu.PermissionString(menu.ActionCreate, "Tournaments"),
			menu.PermissionString(menu.ActionPublish, "Tournaments"),
		}},
		{Pattern: "/api/academy", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Academy"),
		}},
		{Pattern: "/api/academy/coaches", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Coaches"),
			menu.PermissionString(menu.ActionCreate, "Coaches"),
		}},
		{Pattern: "/api/sports-camps", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Sports Camps"),
			menu.PermissionString(menu.ActionCreate, "Sports Camps"),
		}},
		{Pattern: "/api/users", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Users"),
			menu.PermissionString(menu.ActionCreate, "Users"),
		}},
		{Pattern: "/api/users/roles", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Roles"),
			menu.PermissionString(menu.ActionCreate, "Roles"),
		}},
		{Pattern: "/api/permissions/catalog", Allowed: []string{
			menu.PermissionString(menu.ActionView, "Roles"),
			menu.PermissionString(menu.ActionCreate, "Roles"),
		}},
		{Pattern: "/api/permissions/routes", Public: true},
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *adminService) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorw("failed to encode response", "error", err)
	}
}

func (s *adminService) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Message: message})
}

func (s *adminService) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
