package handlers_test

import (
	"ShopFront/internal/auth"
	"ShopFront/internal/cache"
	"ShopFront/internal/config"
	"ShopFront/internal/handlers"
	"ShopFront/internal/middleware"
	"ShopFront/internal/repo"
	"ShopFront/internal/service"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// testServer - роутер поверх настоящих сервисов и in-memory SQLite с каталогом
type testServer struct {
	t      *testing.T
	router http.Handler
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:h_" + name + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repo.Migrate(db))

	itemRepo := repo.NewItemRepository(db)
	_, err = repo.SeedItems(context.Background(), itemRepo)
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	middleware.SetLogger(log)

	tokens := auth.NewTokenManager("test-secret")
	userService := service.NewUserService(repo.NewUserRepository(db), tokens)
	catalogService := service.NewCatalogService(itemRepo, cache.NopCache{}, log)
	cartService := service.NewCartService(repo.NewCartRepository(db), itemRepo)

	h := handlers.NewHandler(userService, catalogService, cartService, tokens, log, &config.Config{})
	return &testServer{t: t, router: h.Router, tokens: tokens}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		middleware.SetBearer(req, token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// register регистрирует пользователя и возвращает его токен
func (s *testServer) register(username string) string {
	s.t.Helper()
	rr := s.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(s.t, http.StatusCreated, rr.Code, rr.Body.String())
	var resp handlers.AuthResponse
	require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.AccessToken)
	return resp.AccessToken
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handlers.ErrorResponse](t, rr).Error
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestResponsesCompressedWhenAccepted(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	var cats []string
	require.NoError(t, json.Unmarshal(raw, &cats))
	assert.ElementsMatch(t, []string{"Electronics", "Home", "Books", "Clothing"}, cats)

	// без Accept-Encoding ответ остаётся как есть
	plain := s.do(http.MethodGet, "/api/categories", "", nil)
	assert.Empty(t, plain.Header().Get("Content-Encoding"))
}

func TestGzipRequestBodyAccepted(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"username":"gz","email":"gz@example.com","password":"secret1"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/register", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}
