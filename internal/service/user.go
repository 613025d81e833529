package service

import (
	"ShopFront/internal/auth"
	"ShopFront/internal/model"
	"ShopFront/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService - регистрация и вход пользователей.
type UserService struct {
	repo   repo.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(r repo.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: r, tokens: tokens}
}

// Register создаёт пользователя и выпускает для него токен.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	taken, err := s.exists(s.repo.GetUserByUsername(ctx, username))
	if err != nil {
		return nil, "", fmt.Errorf("lookup username: %w", err)
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}
	taken, err = s.exists(s.repo.GetUserByEmail(ctx, email))
	if err != nil {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, "", s.insertConflict(ctx, username, email, err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login проверяет пароль и выпускает токен.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// insertConflict разбирает ошибку вставки: параллельная регистрация с тем же
// username/email проходит проверки выше и падает на уникальном индексе.
func (s *UserService) insertConflict(ctx context.Context, username, email string, err error) error {
	if taken, lookupErr := s.exists(s.repo.GetUserByUsername(ctx, username)); lookupErr == nil && taken {
		return ErrUsernameTaken
	}
	if taken, lookupErr := s.exists(s.repo.GetUserByEmail(ctx, email)); lookupErr == nil && taken {
		return ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return fmt.Errorf("create user: %w", err)
}

// exists трактует gorm.ErrRecordNotFound и nil-пользователя как «не найден».
func (s *UserService) exists(u *model.User, err error) (bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u != nil, nil
}
