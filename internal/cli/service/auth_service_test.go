package service

import (
	"ShopFront/internal/cli/api"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name                      string
		username, email, password string
		want                      error
	}{
		{"ok", "alice", "alice@example.com", "secret1", nil},
		{"missing", "alice", "", "secret1", ErrMissingFields},
		{"blank username", "  ", "a@b.co", "secret1", ErrMissingFields},
		{"no at", "alice", "alice.example.com", "secret1", ErrInvalidEmail},
		{"no dot", "alice", "alice@example", "secret1", ErrInvalidEmail},
		{"spaces", "alice", "al ice@example.com", "secret1", ErrInvalidEmail},
		{"short password", "alice", "alice@example.com", "12345", ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRegistration(tt.username, tt.email, tt.password); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/api/register":
			if body["username"] == "taken" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Username already exists"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"User created successfully","access_token":"tok-new","user":{"id":7,"username":"` + body["username"] + `"}}`))
		case "/api/login":
			if body["password"] != "secret1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
				return
			}
			_, _ = w.Write([]byte(`{"access_token":"tok-login","user":{"id":7,"username":"` + body["username"] + `"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestAuthService_RegisterLoginLogout(t *testing.T) {
	ts := authServer(t)
	store := newStore(t)
	svc := NewAuthService(api.NewClient(ts.URL, ""), store, store)
	ctx := context.Background()

	if _, err := svc.CurrentUser(); err == nil {
		t.Fatalf("no user expected before login")
	}

	u, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("user id: %d", u.ID)
	}
	if tok, _ := store.Load(); tok != "tok-new" {
		t.Fatalf("token not stored: %q", tok)
	}

	if _, err := svc.Register(ctx, "taken", "t@example.com", "secret1"); err == nil {
		t.Fatalf("expected duplicate error")
	} else if !api.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400 api error, got %v", err)
	}

	// локальная валидация не доходит до сервера
	if _, err := svc.Register(ctx, "bob", "bad-email", "secret1"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	if _, err := svc.Login(ctx, "alice", "wrong"); err == nil {
		t.Fatalf("expected invalid credentials")
	}
	if _, err := svc.Login(ctx, "alice", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok, _ := store.Load(); tok != "tok-login" {
		t.Fatalf("token not replaced: %q", tok)
	}
	if name, err := svc.CurrentUser(); err != nil || name != "alice" {
		t.Fatalf("current user: %q %v", name, err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.CurrentUser(); err == nil {
		t.Fatalf("no user expected after logout")
	}
}
