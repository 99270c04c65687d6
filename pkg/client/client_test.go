package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"FC Barcelona"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("test-token")

	var teams []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), "/api/teams", &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "FC Barcelona", teams[0].Name)
}

func TestErrorEnvelopeNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"match not found"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/api/matches/99", nil)
	require.Error(t, err)

	var apiErrs APIErrors
	require.ErrorAs(t, err, &apiErrs)
	require.Len(t, apiErrs, 1)
	assert.Equal(t, "match not found", apiErrs[0].Message)
}

func TestUndecodableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	err := New(srv.URL).Get(context.Background(), "/api/teams", nil)
	require.Error(t, err)

	var apiErrs APIErrors
	require.ErrorAs(t, err, &apiErrs)
	assert.Equal(t, "something went wrong", apiErrs.Error())
}

func TestTransportFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := New(srv.URL).Get(context.Background(), "/api/teams", nil)
	require.Error(t, err)

	var apiErrs APIErrors
	require.ErrorAs(t, err, &apiErrs)
	assert.Equal(t, "something went wrong", apiErrs.Error())
}

func TestPostSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Summer League"}`))
	}))
	defer srv.Close()

	var created struct {
		ID int64 `json:"id"`
	}
	err := New(srv.URL).Post(context.Background(), "/api/tournaments",
		map[string]string{"name": "Summer League"}, &created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}
