package cache

import (
	"ShopFront/internal/model"
	"context"
	"errors"
)

// CatalogCache кеширует результаты чтения каталога.
type CatalogCache interface {
	GetItems(ctx context.Context, key string) ([]model.Item, error)
	SetItems(ctx context.Context, key string, items []model.Item) error
	GetCategories(ctx context.Context) ([]string, error)
	SetCategories(ctx context.Context, categories []string) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopCache - кеш-заглушка для запуска без Redis: всегда промах.
type NopCache struct{}

func (NopCache) GetItems(context.Context, string) ([]model.Item, error) { return nil, ErrCacheMiss }
func (NopCache) SetItems(context.Context, string, []model.Item) error   { return nil }
func (NopCache) GetCategories(context.Context) ([]string, error)        { return nil, ErrCacheMiss }
func (NopCache) SetCategories(context.Context, []string) error          { return nil }
