package service

import (
	"ShopFront/internal/cli/api"
	"ShopFront/internal/cli/model"
	"ShopFront/internal/cli/repo"
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register создаёт аккаунт и сохраняет сессию.
	Register(ctx context.Context, username, email, password string) (*model.User, error)

	// Login логирование пользователя.
	Login(ctx context.Context, username, password string) (*model.User, error)

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает имя текущего пользователя, если он установлен.
	CurrentUser() (string, error)
}

var (
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrMissingFields    = errors.New("username, email and password are required")
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration - проверки формы регистрации до запроса к серверу.
func ValidateRegistration(username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

type authService struct {
	client *api.Client
	tokens repo.TokenStore
	users  repo.UserContextStore
}

// NewAuthService конструктор; client должен быть без токена.
func NewAuthService(client *api.Client, tokens repo.TokenStore, users repo.UserContextStore) AuthService {
	return &authService{client: client, tokens: tokens, users: users}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}
	var resp model.AuthResponse
	req := map[string]string{"username": username, "email": email, "password": password}
	if err := s.client.Post(ctx, "/api/register", req, &resp); err != nil {
		return nil, err
	}
	return s.persist(resp)
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	var resp model.AuthResponse
	req := map[string]string{"username": username, "password": password}
	if err := s.client.Post(ctx, "/api/login", req, &resp); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			return nil, errors.New("invalid username or password")
		}
		return nil, err
	}
	return s.persist(resp)
}

// persist сохраняет токен и имя пользователя из ответа сервера
func (s *authService) persist(resp model.AuthResponse) (*model.User, error) {
	if resp.AccessToken == "" {
		return nil, errors.New("server returned no access token")
	}
	if err := s.tokens.Save(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}
	if err := s.users.SaveLogin(resp.User.Username); err != nil {
		return nil, fmt.Errorf("saving login: %w", err)
	}
	return &resp.User, nil
}

func (s *authService) Logout() error {
	return s.tokens.Clear()
}

func (s *authService) CurrentUser() (string, error) {
	if _, err := s.tokens.Load(); err != nil {
		return "", err
	}
	return s.users.LoadLogin()
}
