package service

import (
	"ShopFront/internal/cache"
	"ShopFront/internal/model"
	"ShopFront/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserRepo) user(args mock.Arguments) (*model.User, error) {
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.ItemRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) CreateBatch(ctx context.Context, items []model.Item) error {
	return m.Called(ctx, items).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// мок для repo.CartRepository
type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.CartItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCartRepo) GetForUser(ctx context.Context, userID, id int64) (*model.CartItem, error) {
	return m.row(m.Called(ctx, userID, id))
}
func (m *mockCartRepo) AddOrIncrement(ctx context.Context, userID, itemID int64, qty int) (*model.CartItem, error) {
	return m.row(m.Called(ctx, userID, itemID, qty))
}
func (m *mockCartRepo) SetQuantity(ctx context.Context, userID, id int64, qty int) (*model.CartItem, error) {
	return m.row(m.Called(ctx, userID, id, qty))
}
func (m *mockCartRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockCartRepo) row(args mock.Arguments) (*model.CartItem, error) {
	if v, ok := args.Get(0).(*model.CartItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CartRepository = (*mockCartRepo)(nil)

// мок для cache.CatalogCache
type mockCatalogCache struct{ mock.Mock }

func (m *mockCatalogCache) GetItems(ctx context.Context, key string) ([]model.Item, error) {
	args := m.Called(ctx, key)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCatalogCache) SetItems(ctx context.Context, key string, items []model.Item) error {
	return m.Called(ctx, key, items).Error(0)
}
func (m *mockCatalogCache) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCatalogCache) SetCategories(ctx context.Context, categories []string) error {
	return m.Called(ctx, categories).Error(0)
}

var _ cache.CatalogCache = (*mockCatalogCache)(nil)
