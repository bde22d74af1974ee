package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := newFakeUserRepo()
	tokens := services.NewTokenService("test-secret", "algovista-test", time.Hour, repo)
	handler := adapterHTTP.NewAuthHandler(services.NewAuthService(repo, tokens))

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r
}

func registerBody(t *testing.T, username, email, password string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success: Returns 201 without the password hash", func(t *testing.T) {
		r := setupAuthRouter()

		req, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "alice", "alice@example.com", "supersecret"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "alice@example.com")
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "supersecret")
	})

	t.Run("Fail: 409 on duplicate email", func(t *testing.T) {
		r := setupAuthRouter()

		req, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "alice", "alice@example.com", "supersecret"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)

		req2, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "bob", "alice@example.com", "supersecret"))
		req2.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req2)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 400 on short password", func(t *testing.T) {
		r := setupAuthRouter()

		req, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "alice", "alice@example.com", "short"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 400 on invalid email", func(t *testing.T) {
		r := setupAuthRouter()

		req, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "alice", "not-an-email", "supersecret"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	register := func(t *testing.T, r *gin.Engine) {
		t.Helper()
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", registerBody(t, "alice", "alice@example.com", "supersecret"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("Success: Returns a token", func(t *testing.T) {
		r := setupAuthRouter()
		register(t, r)

		body, _ := json.Marshal(map[string]string{"email": "alice@example.com", "password": "supersecret"})
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("Fail: 401 on wrong password", func(t *testing.T) {
		r := setupAuthRouter()
		register(t, r)

		body, _ := json.Marshal(map[string]string{"email": "alice@example.com", "password": "wrongpassword"})
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 401 on unknown email", func(t *testing.T) {
		r := setupAuthRouter()

		body, _ := json.Marshal(map[string]string{"email": "ghost@example.com", "password": "supersecret"})
		req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
