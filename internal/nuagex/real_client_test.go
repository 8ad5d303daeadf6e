package nuagex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginHandler(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Username != "alice" || creds.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-123"})
	})
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
}

func TestAuthenticateCachesToken(t *testing.T) {
	logins := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		logins++
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-123"})
	})
	mux.HandleFunc("GET /labs", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]labPayload{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	require.NoError(t, c.Authenticate(context.Background()))
	require.NoError(t, c.Authenticate(context.Background()))

	_, err := c.LabByName(context.Background(), "lab1")
	require.NoError(t, err)

	assert.Equal(t, 1, logins)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "wrong", WithEndpoint(srv.URL))
	err := c.Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Contains(t, err.Error(), "username=alice")
	assert.NotContains(t, err.Error(), "wrong")
}

func TestLabByName(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("GET /labs", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, "lab1", r.URL.Query().Get("name"))
		_ = json.NewEncoder(w).Encode([]labPayload{{
			ID:         "5b1e000000000000000000aa",
			Name:       "lab1",
			Status:     "started",
			ExternalIP: "203.0.113.7",
			Password:   "hunter2",
		}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	lab, err := c.LabByName(context.Background(), "lab1")

	require.NoError(t, err)
	require.NotNil(t, lab)
	assert.Equal(t, "5b1e000000000000000000aa", lab.ID)
	assert.Equal(t, StatusStarted, lab.Status)
	assert.Equal(t, "203.0.113.7", lab.Address)
	assert.True(t, lab.Running())
}

func TestLabByNameAbsent(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("GET /labs", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]labPayload{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	lab, err := c.LabByName(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, lab)
}

func TestCreateLabPayload(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("POST /labs", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "lab1", payload["name"])
		assert.Equal(t, "tpl-1", payload["template"])
		assert.Equal(t, "0001-01-01T00:00:00Z", payload["expires"])
		assert.Empty(t, payload["services"])
		assert.Empty(t, payload["networks"])
		assert.Empty(t, payload["servers"])
		_ = json.NewEncoder(w).Encode(labPayload{ID: "new-id", Name: "lab1", Status: "pending"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	lab, err := c.CreateLab(context.Background(), "lab1", Template{ID: "tpl-1", Name: "base"})

	require.NoError(t, err)
	assert.Equal(t, "new-id", lab.ID)
	assert.Equal(t, StatusPending, lab.Status)
	assert.False(t, lab.Running())
}

func TestDeleteLab(t *testing.T) {
	deleted := ""
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("DELETE /labs/{id}", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	err := c.DeleteLab(context.Background(), &Lab{ID: "lab-id-1", Name: "lab1"})

	require.NoError(t, err)
	assert.Equal(t, "lab-id-1", deleted)
}

func TestTemplates(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("GET /templates", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		_ = json.NewEncoder(w).Encode([]Template{
			{ID: "tpl-b", Name: "b"},
			{ID: "tpl-a", Name: "a"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	templates, err := c.Templates(context.Background())

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "tpl-b", templates[0].ID)
}

func TestAPIErrorOnNon2xx(t *testing.T) {
	mux := http.NewServeMux()
	newLoginHandler(t, mux)
	mux.HandleFunc("GET /labs", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("alice", "s3cret", WithEndpoint(srv.URL))
	_, err := c.LabByName(context.Background(), "lab1")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Message, "quota exceeded")
}
