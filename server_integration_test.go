package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("test-secret")
	_ = os.Setenv("UPLOAD_BASE", t.TempDir())
	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	// 1. Create owner profile (bootstrap path, no credentials yet)
	email := fmt.Sprintf("owner-%d@example.com", os.Getpid())
	resp := performRequest(r, http.MethodPost, "/api/profile", jsonBody(t, map[string]any{
		"name":     "Owner",
		"email":    email,
		"password": "secret1",
		"skills":   []string{"go"},
	}), "")
	if resp.Code != 200 {
		t.Fatalf("create profile failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var created map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	profileID, _ := created["id"].(string)
	if profileID == "" {
		t.Fatalf("empty profile id in create response: %+v", created)
	}
	if _, leaked := created["password"]; leaked {
		t.Fatalf("password leaked in profile response")
	}

	// 2. Login
	resp = performRequest(r, http.MethodPost, "/api/login", jsonBody(t, map[string]string{
		"email": email, "password": "secret1",
	}), "")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	// 3. Mutation without a token is rejected
	unauth := performRequest(r, http.MethodPost, "/api/projects", jsonBody(t, map[string]any{
		"title": "x", "description": "y",
	}), "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthorized create got %d", unauth.Code)
	}

	// 4. Create project
	resp = performRequest(r, http.MethodPost, "/api/projects", jsonBody(t, map[string]any{
		"title":       "Portfolio Site",
		"description": "this site",
		"category":    "web-development",
		"tags":        []string{"go", "gin"},
		"profile_id":  profileID,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create project failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var project map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &project)
	projectID, _ := project["id"].(string)
	if projectID == "" {
		t.Fatalf("empty project id: %+v", project)
	}
	if project["status"] != "completed" {
		t.Fatalf("expected default status completed, got %v", project["status"])
	}

	// 5. List projects scoped to profile
	resp = performRequest(r, http.MethodGet, "/api/projects?profile_id="+profileID, nil, "")
	if resp.Code != 200 {
		t.Fatalf("list projects failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var projects []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &projects)
	if len(projects) == 0 {
		t.Fatalf("expected at least one project")
	}

	// 6. Update project
	resp = performRequest(r, http.MethodPut, "/api/projects/"+projectID, jsonBody(t, map[string]any{
		"title": "Portfolio Site v2", "description": "this site", "status": "in-progress",
	}), token)
	if resp.Code != 200 {
		t.Fatalf("update project failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var updated map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &updated)
	if updated["title"] != "Portfolio Site v2" {
		t.Fatalf("update not applied: %+v", updated)
	}

	// 7. Create certificate without slug, expect it derived from title
	resp = performRequest(r, http.MethodPost, "/api/certificates", jsonBody(t, map[string]any{
		"title":      "Data Science Pro",
		"issuer":     "Coursera",
		"date":       "2025",
		"profile_id": profileID,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create certificate failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var cert map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &cert)
	if cert["slug"] != "data-science-pro" {
		t.Fatalf("expected derived slug data-science-pro, got %v", cert["slug"])
	}

	// 8. Fetch certificate by slug
	resp = performRequest(r, http.MethodGet, "/api/certificates/data-science-pro", nil, "")
	if resp.Code != 200 {
		t.Fatalf("get certificate by slug failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 9. Duplicate slug for the same profile is rejected
	resp = performRequest(r, http.MethodPost, "/api/certificates", jsonBody(t, map[string]any{
		"title":      "Data Science Pro",
		"issuer":     "Coursera",
		"date":       "2025",
		"profile_id": profileID,
	}), token)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slug got %d", resp.Code)
	}

	// 10. Experiences round trip
	resp = performRequest(r, http.MethodPost, "/api/experiences", jsonBody(t, map[string]any{
		"role": "Engineer", "company": "Acme", "period": "2024-2025",
		"description": "built things", "profile_id": profileID,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create experience failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var exp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &exp)
	expID, _ := exp["id"].(string)

	resp = performRequest(r, http.MethodGet, "/api/experiences?profile_id="+profileID, nil, "")
	if resp.Code != 200 {
		t.Fatalf("list experiences failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 11. Profile response nests collections
	resp = performRequest(r, http.MethodGet, "/api/profile", nil, "")
	if resp.Code != 200 {
		t.Fatalf("get profile failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var prof map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &prof)
	if _, ok := prof["experiences"]; !ok {
		t.Fatalf("profile response missing nested experiences: %+v", prof)
	}

	// 12. Deletes
	resp = performRequest(r, http.MethodDelete, "/api/experiences/"+expID, nil, token)
	if resp.Code != 200 {
		t.Fatalf("delete experience failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodDelete, "/api/projects/"+projectID, nil, token)
	if resp.Code != 200 {
		t.Fatalf("delete project failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodDelete, "/api/projects/"+projectID, nil, token)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice got %d", resp.Code)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	initDB()
}
