package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	userRepo *repositories.MemoryUserRepository
	jobRepo  *repositories.MemoryJobRepository
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "production" // keep test logs quiet
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 72
	cfg.Auth.Enabled = authEnabled

	userRepo := repositories.NewMemoryUserRepository()
	jobRepo := repositories.NewMemoryJobRepository()

	return &testServer{
		router:   SetupRouter(cfg, userRepo, jobRepo),
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func signupBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":              "Alice",
		"email":             email,
		"password":          "s3cret-password",
		"phone_number":      "+77001234567",
		"gender":            "female",
		"date_of_birth":     "1995-04-12",
		"membership_status": "basic",
	}
}

func jobBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"type":        "Full-Time",
		"description": "Build and run backend services.",
		"company": map[string]interface{}{
			"name":         "Acme Corp",
			"contactEmail": "jobs@acme.example",
			"contactPhone": "+15550100",
		},
	}
}

// signup registers a user and returns the issued token.
func (s *testServer) signup(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/users/signup", "", signupBody(email))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	resp := decode(t, w)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestSignup(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/api/users/signup", "", signupBody("alice@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	resp := decode(t, w)
	assert.NotEmpty(t, resp["token"])

	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "alice@example.com", user["email"])

	// The hash must never appear anywhere in the response.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignup_MissingFields(t *testing.T) {
	s := newTestServer(t, true)

	body := signupBody("alice@example.com")
	delete(body, "gender")

	w := s.do(t, http.MethodPost, "/api/users/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := s.userRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	s := newTestServer(t, true)
	s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodPost, "/api/users/signup", "", signupBody("alice@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, w)["code"])
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, true)
	s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	resp := decode(t, w)
	assert.NotEmpty(t, resp["token"])
	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestServer(t, true)
	s.signup(t, "alice@example.com")

	wrongPassword := s.do(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	unknownEmail := s.do(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "s3cret-password",
	})

	// Both failure modes must be byte-identical.
	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestGetMe(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, "Alice", resp["name"])
	assert.Equal(t, "alice@example.com", resp["email"])
	assert.NotContains(t, w.Body.String(), "s3cret-password")
	assert.NotContains(t, w.Body.String(), `"password"`)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	cases := map[string]string{
		"no token":         "",
		"garbage token":    "not-a-token",
		"tampered token":   token[:len(token)-2] + "xx",
		"well-formed fake": "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.invalid",
	}

	var bodies []string
	for name, tok := range cases {
		w := s.do(t, http.MethodGet, "/api/users/me", tok, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		bodies = append(bodies, w.Body.String())
	}

	// Every rejection reason produces the same generic body.
	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}

func TestUpdateMe(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodPatch, "/api/users/me", token, map[string]interface{}{
		"name":              "Alice B.",
		"membership_status": "premium",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, "Alice B.", resp["name"])
	assert.Equal(t, "premium", resp["membership_status"])
	// Untouched fields survive the patch.
	assert.Equal(t, "+77001234567", resp["phone_number"])
}

func TestUpdateMe_IgnoresEmailAndPassword(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodPatch, "/api/users/me", token, map[string]interface{}{
		"email":    "evil@example.com",
		"password": "hijacked",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", decode(t, w)["email"])

	// Original credentials still work.
	login := s.do(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestDeleteMe_OrphanedToken(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodDelete, "/api/users/me", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The still-valid token no longer resolves to a user.
	w = s.do(t, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	count, err := s.userRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestJobCRUD(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	// Create.
	w := s.do(t, http.MethodPost, "/api/jobs", token, jobBody("Backend Engineer"))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	created := decode(t, w)
	jobID, _ := created["id"].(string)
	require.NotEmpty(t, jobID)

	company, ok := created["company"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", company["name"])
	assert.Equal(t, "jobs@acme.example", company["contactEmail"])

	// Read back.
	w = s.do(t, http.MethodGet, "/api/jobs/"+jobID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend Engineer", decode(t, w)["title"])

	// Partial update keeps untouched fields.
	w = s.do(t, http.MethodPut, "/api/jobs/"+jobID, token, map[string]interface{}{
		"title": "Senior Backend Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, "Senior Backend Engineer", updated["title"])
	assert.Equal(t, "Full-Time", updated["type"])

	// List is newest first.
	w = s.do(t, http.MethodPost, "/api/jobs", token, jobBody("Data Engineer"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var jobs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "Data Engineer", jobs[0]["title"])

	// Delete, then the id is gone.
	w = s.do(t, http.MethodDelete, "/api/jobs/"+jobID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/jobs/"+jobID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/jobs/"+jobID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobs_MalformedID(t *testing.T) {
	s := newTestServer(t, true)
	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodGet, "/api/jobs/not-an-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MALFORMED_ID", decode(t, w)["code"])
}

func TestJobs_RequireAuth(t *testing.T) {
	s := newTestServer(t, true)

	for _, route := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/jobs", nil},
		{http.MethodPost, "/api/jobs", jobBody("X")},
		{http.MethodPut, "/api/jobs/000000000000000000000000", map[string]interface{}{"title": "X"}},
		{http.MethodDelete, "/api/jobs/000000000000000000000000", nil},
	} {
		w := s.do(t, route.method, route.path, "", route.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, fmt.Sprintf("%s %s", route.method, route.path))
	}

	// Rejected writes must leave the store untouched.
	count, err := s.jobRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOpenVariant(t *testing.T) {
	s := newTestServer(t, false)

	// Jobs work without any token.
	w := s.do(t, http.MethodPost, "/api/jobs", "", jobBody("Backend Engineer"))
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	jobID, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, jobID)

	w = s.do(t, http.MethodGet, "/api/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Account routes do not exist in this variant.
	w = s.do(t, http.MethodPost, "/api/users/signup", "", signupBody("alice@example.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFullLifecycle(t *testing.T) {
	s := newTestServer(t, true)

	token := s.signup(t, "alice@example.com")

	w := s.do(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, "/api/users/me", token, map[string]interface{}{"name": "Alice B."})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice B.", decode(t, w)["name"])

	w = s.do(t, http.MethodDelete, "/api/users/me", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
