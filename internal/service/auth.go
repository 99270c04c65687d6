package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sports-admin-service/internal/repository"
	"sports-admin-service/internal/repository/model"
)

// Authentication is mocked: a login mints an opaque token held in memory,
// there are no passwords and no expiry. Sessions vanish on restart along
// with the rest of the in-memory state.

type session struct {
	User        *model.User
	Permissions []string
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]session)}
}

func (s *sessionStore) put(token string, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sess
}

func (s *sessionStore) get(token string) (session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

func (s *sessionStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

type sessionContextKey struct{}

func sessionFromContext(ctx context.Context) (session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(session)
	return sess, ok
}

func (s *adminService) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	user, err := s.repo.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Errorw("error looking up user", "error", err)
		s.writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	perms, err := s.resolvePermissions(r, user)
	if err != nil {
		s.logger.Errorw("error resolving user permissions", "error", err)
		s.writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	token := uuid.NewString()
	s.sessions.put(token, session{User: user, Permissions: perms})

	s.writeJSON(w, http.StatusOK, map[string]any{
		"token":       token,
		"user":        user,
		"permissions": perms,
	})
}

func (s *adminService) resolvePermissions(r *http.Request, user *model.User) ([]string, error) {
	if user.RoleID == 0 {
		return []string{}, nil
	}

	role, err := s.repo.GetRoleByID(r.Context(), user.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return role.Permissions, nil
}

func (s *adminService) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.sessions.delete(token)
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// requireAuth rejects requests without a live session token and attaches
// the session to the request context for the gate and handlers.
func (s *adminService) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.writeError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		sess, ok := s.sessions.get(token)
		if !ok {
			s.writeError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
