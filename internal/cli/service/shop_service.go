package service

import (
	"ShopFront/internal/cli/api"
	"ShopFront/internal/cli/model"
	"context"
	"fmt"
	"net/url"
)

// ItemQuery - фильтры каталога; пустые поля не передаются.
type ItemQuery struct {
	Category string
	MinPrice string
	MaxPrice string
	Search   string
}

func (q ItemQuery) encode() string {
	v := url.Values{}
	for key, val := range map[string]string{
		"category":  q.Category,
		"min_price": q.MinPrice,
		"max_price": q.MaxPrice,
		"search":    q.Search,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ShopService - операции каталога и серверной корзины.
type ShopService struct {
	client *api.Client
}

func NewShopService(client *api.Client) *ShopService {
	return &ShopService{client: client}
}

// LoggedIn сообщает, есть ли у клиента токен.
func (s *ShopService) LoggedIn() bool { return s.client.Token != "" }

func (s *ShopService) Session(ctx context.Context) (model.Session, error) {
	var sess model.Session
	err := s.client.Get(ctx, "/api/session", &sess)
	return sess, err
}

func (s *ShopService) Items(ctx context.Context, q ItemQuery) ([]model.Item, error) {
	var items []model.Item
	err := s.client.Get(ctx, "/api/items"+q.encode(), &items)
	return items, err
}

func (s *ShopService) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	err := s.client.Get(ctx, "/api/categories", &cats)
	return cats, err
}

func (s *ShopService) Cart(ctx context.Context) (model.Cart, error) {
	var cart model.Cart
	err := s.client.Get(ctx, "/api/cart", &cart)
	return cart, err
}

func (s *ShopService) AddToCart(ctx context.Context, itemID int64, qty int) (*model.CartItem, error) {
	var res model.CartItemResult
	req := map[string]any{"item_id": itemID, "quantity": qty}
	if err := s.client.Post(ctx, "/api/cart", req, &res); err != nil {
		return nil, err
	}
	return res.CartItem, nil
}

// UpdateCartItem возвращает nil, если строка удалена (qty <= 0).
func (s *ShopService) UpdateCartItem(ctx context.Context, cartItemID int64, qty int) (*model.CartItem, error) {
	var res model.CartItemResult
	if err := s.client.Put(ctx, fmt.Sprintf("/api/cart/%d", cartItemID), map[string]int{"quantity": qty}, &res); err != nil {
		return nil, err
	}
	return res.CartItem, nil
}

func (s *ShopService) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/cart/%d", cartItemID), nil)
}
