package service

import (
	"ShopFront/internal/cli/model"
	"ShopFront/internal/cli/repo"
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotInCart       = errors.New("item is not in the local cart")
)

// LocalCartService - анонимная корзина до входа в аккаунт.
// Повторное добавление суммирует количество, количество <= 0 удаляет строку.
type LocalCartService struct {
	repo repo.LocalCartRepository
}

func NewLocalCartService(r repo.LocalCartRepository) *LocalCartService {
	return &LocalCartService{repo: r}
}

func (s *LocalCartService) Add(ctx context.Context, itemID int64, qty int) (*model.LocalCartLine, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}
	return s.repo.Add(ctx, itemID, qty)
}

// Update возвращает removed=true, если строка удалена.
func (s *LocalCartService) Update(ctx context.Context, itemID int64, qty int) (removed bool, err error) {
	if qty <= 0 {
		return true, s.Remove(ctx, itemID)
	}
	ok, err := s.repo.SetQuantity(ctx, itemID, qty)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrNotInCart, itemID)
	}
	return false, nil
}

func (s *LocalCartService) Remove(ctx context.Context, itemID int64) error {
	ok, err := s.repo.Remove(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotInCart, itemID)
	}
	return nil
}

func (s *LocalCartService) List(ctx context.Context) ([]model.LocalCartLine, error) {
	return s.repo.List(ctx)
}
