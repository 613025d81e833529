package handlers_test

import (
	"ShopFront/internal/handlers"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/register", "", map[string]string{
			"username": "alice", "email": "alice@example.com", "password": "secret1",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decode[handlers.AuthResponse](t, rr)
		assert.Equal(t, "User created successfully", resp.Message)
		assert.Equal(t, "alice", resp.User.Username)
		assert.NotZero(t, resp.User.ID)
		assert.NotContains(t, rr.Body.String(), "password")

		id, err := s.tokens.Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, id)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/register", "", map[string]string{
			"username": "alice", "email": "other@example.com", "password": "secret1",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Username already exists", errorMessage(t, rr))
	})

	t.Run("duplicate email", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/register", "", map[string]string{
			"username": "bob", "email": "alice@example.com", "password": "secret1",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Email already exists", errorMessage(t, rr))
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/register", "", map[string]string{"username": "carol"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing required fields", errorMessage(t, rr))
	})

	t.Run("bad json", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/register", "", "{not json")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing required fields", errorMessage(t, rr))
	})
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")

	t.Run("ok", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/login", "", map[string]string{"username": "alice", "password": "secret1"})
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[handlers.AuthResponse](t, rr)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/login", "", map[string]string{"username": "alice", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid credentials", errorMessage(t, rr))
	})

	t.Run("unknown user", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/login", "", map[string]string{"username": "ghost", "password": "secret1"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/login", "", map[string]string{"username": "alice"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing username or password", errorMessage(t, rr))
	})
}

func TestSession(t *testing.T) {
	s := newTestServer(t)
	token := s.register("alice")

	rr := s.do(http.MethodGet, "/api/session", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	anon := decode[handlers.SessionResponse](t, rr)
	assert.False(t, anon.LoggedIn)
	assert.Nil(t, anon.UserID)

	rr = s.do(http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sess := decode[handlers.SessionResponse](t, rr)
	assert.True(t, sess.LoggedIn)
	require.NotNil(t, sess.UserID)

	rr = s.do(http.MethodGet, "/api/session", "garbage", nil)
	assert.False(t, decode[handlers.SessionResponse](t, rr).LoggedIn)
}
