package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sports-admin-service/internal/menu"
	"sports-admin-service/internal/messaging/notifier"
	"sports-admin-service/internal/repository"
)

// newTestServer runs the full router over a seeded memory repository, the
// closest thing to the deployed wiring that fits in a unit test.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewMemoryRepository()
	require.NoError(t, repository.Seed(context.Background(), repo))

	svc := newAdminService(zap.NewNop().Sugar(), repo, notifier.NewLogNotifier(zap.NewNop().Sugar()), menu.Default())
	srv := httptest.NewServer(svc.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func doGet(t *testing.T, srv *httptest.Server, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doGet(t, srv, "/api/dashboard", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Message)
}

func TestPublicFeedNeedsNoAuth(t *testing.T) {
	srv := newTestServer(t)

	resp := doGet(t, srv, "/api/sfa-next", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"email": "nobody@sportsadmin.local"})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRootUserReachesEverything(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin@sportsadmin.local")

	for _, path := range []string{
		"/api/dashboard", "/api/teams", "/api/matches", "/api/tournaments",
		"/api/academy", "/api/academy/coaches", "/api/sports-camps",
		"/api/users", "/api/users/roles", "/api/permissions/catalog",
		"/api/permissions/routes",
	} {
		resp := doGet(t, srv, path, token)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)
	}
}

func TestViewerDeniedOutsideGrants(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "viewer@sportsadmin.local")

	// The seeded viewer role grants dashboard, tournament and academy views.
	resp := doGet(t, srv, "/api/dashboard", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, srv, "/api/tournaments", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, srv, "/api/users", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "access denied", envelope.Message)
}

func TestGetMatchNotFound(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin@sportsadmin.local")

	resp := doGet(t, srv, "/api/matches/999", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin@sportsadmin.local")

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, srv, "/api/dashboard", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateTournamentShowsUpInDashboardActivities(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin@sportsadmin.local")

	body := bytes.NewBufferString(`{"name":"Winter Cup"}`)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/tournaments", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doGet(t, srv, "/api/dashboard", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard struct {
		Activities []struct {
			Description string `json:"description"`
			EntityType  string `json:"entityType"`
		} `json:"activities"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dashboard))
	require.NotEmpty(t, dashboard.Activities)
	assert.Equal(t, "TOURNAMENT", dashboard.Activities[0].EntityType)
	assert.Contains(t, dashboard.Activities[0].Description, "Winter Cup")
}
