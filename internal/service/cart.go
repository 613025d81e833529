package service

import (
	"ShopFront/internal/model"
	"ShopFront/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService - операции с корзиной аутентифицированного пользователя.
// Строки корзины ищутся только парой (id, user_id): чужая строка даёт ErrCartItemNotFound.
type CartService struct {
	carts repo.CartRepository
	items repo.ItemRepository
}

func NewCartService(carts repo.CartRepository, items repo.ItemRepository) *CartService {
	return &CartService{carts: carts, items: items}
}

// CartSummary - содержимое корзины.
// Count - число строк, а не суммарное количество единиц.
type CartSummary struct {
	Items []model.CartItem
	Total decimal.Decimal
	Count int
}

func (s *CartService) GetCart(ctx context.Context, userID int64) (CartSummary, error) {
	rows, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return CartSummary{}, fmt.Errorf("list cart: %w", err)
	}
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Subtotal())
	}
	if rows == nil {
		rows = []model.CartItem{}
	}
	return CartSummary{Items: rows, Total: total, Count: len(rows)}, nil
}

// AddToCart добавляет товар; если он уже в корзине - увеличивает количество.
func (s *CartService) AddToCart(ctx context.Context, userID, itemID int64, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	ci, err := s.carts.AddOrIncrement(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return ci, nil
}

// UpdateCartItem выставляет количество. quantity <= 0 удаляет строку, тогда результат nil.
func (s *CartService) UpdateCartItem(ctx context.Context, userID, cartItemID int64, quantity int) (*model.CartItem, error) {
	if _, err := s.owned(ctx, userID, cartItemID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.RemoveFromCart(ctx, userID, cartItemID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	ci, err := s.carts.SetQuantity(ctx, userID, cartItemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return ci, nil
}

// GetCartItem возвращает строку корзины пользователя.
func (s *CartService) GetCartItem(ctx context.Context, userID, cartItemID int64) (*model.CartItem, error) {
	return s.owned(ctx, userID, cartItemID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, cartItemID int64) error {
	deleted, err := s.carts.Delete(ctx, userID, cartItemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if !deleted {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) owned(ctx context.Context, userID, cartItemID int64) (*model.CartItem, error) {
	ci, err := s.carts.GetForUser(ctx, userID, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return ci, nil
}
