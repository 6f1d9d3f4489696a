package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pfbe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjectsScopedByProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects", r.URL.Path)
		require.Equal(t, "pf-1", r.URL.Query().Get("profile_id"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"title": "one"}, {"title": "two"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	projects, err := c.ListProjects(context.Background(), "pf-1")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "one", projects[0].Title)
}

func TestListProjectsFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	_, err := c.ListProjects(context.Background(), "")
	require.EqualError(t, err, "failed to fetch projects")
}

func TestCreateCertificateUnwrapsArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		// legacy bulk-insert shape: one-element array
		w.Write([]byte(`[{"slug":"aws-cert","title":"AWS Cert"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	cert, err := c.CreateCertificate(context.Background(), models.Certificate{Title: "AWS Cert"})
	require.NoError(t, err)
	assert.Equal(t, "aws-cert", cert.Slug)
}

func TestCreateCertificateBareObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"slug":"aws-cert","title":"AWS Cert"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	cert, err := c.CreateCertificate(context.Background(), models.Certificate{Title: "AWS Cert"})
	require.NoError(t, err)
	assert.Equal(t, "aws-cert", cert.Slug)
}

func TestLoginStoresSessionAndAttachesBearer(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true, "token": "tok-123", "refresh_token": "ref-456",
			})
		case "/api/projects":
			sawAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"id":"00000000-0000-0000-0000-000000000001","title":"x"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	require.False(t, c.LoggedIn())

	ok, err := c.Login(context.Background(), "owner@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, c.LoggedIn())

	_, err = c.CreateProject(context.Background(), models.Project{Title: "x", Description: "y"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", sawAuth)
}

func TestLoginRejectedReportsFalseWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	ok, err := c.Login(context.Background(), "owner@example.com", "wrong")
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, c.LoggedIn())
}

func TestLogoutClearsSessionAndRevokes(t *testing.T) {
	var revoked struct {
		RefreshToken string `json:"refresh_token"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok", "refresh_token": "ref"})
		case "/api/revoke_refresh":
			_ = json.NewDecoder(r.Body).Decode(&revoked)
			w.Write([]byte(`{"message":"refresh token revoked"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	ok, err := c.Login(context.Background(), "owner@example.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	c.Logout(context.Background())
	require.False(t, c.LoggedIn())
	assert.Equal(t, "ref", revoked.RefreshToken)
}

func TestGetCertificateBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/certificates/data-science-pro", r.URL.Path)
		w.Write([]byte(`{"slug":"data-science-pro","title":"Data Science Pro"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	cert, err := c.GetCertificateBySlug(context.Background(), "data-science-pro")
	require.NoError(t, err)
	assert.Equal(t, "Data Science Pro", cert.Title)
}

func TestDeleteProjectFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	err := c.DeleteProject(context.Background(), "p1")
	require.EqualError(t, err, "failed to delete project")
}

func TestSendContact(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contact", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"message":"message sent"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", nil)
	err := c.SendContact(context.Background(), "Visitor", "v@example.com", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Visitor", got["name"])
}
