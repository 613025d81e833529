package service

import (
	"ShopFront/internal/cache"
	"ShopFront/internal/model"
	"ShopFront/internal/repo"
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CatalogService - чтение каталога с кешированием.
// Каталог в рамках API только читается, поэтому кеш не инвалидируется, записи живут до TTL.
type CatalogService struct {
	repo   repo.ItemRepository
	cache  cache.CatalogCache
	logger *zap.SugaredLogger
	sfg    singleflight.Group
}

func NewCatalogService(r repo.ItemRepository, c cache.CatalogCache, logger *zap.SugaredLogger) *CatalogService {
	if c == nil {
		c = cache.NopCache{}
	}
	return &CatalogService{repo: r, cache: c, logger: logger}
}

// ListItems возвращает товары, удовлетворяющие всем заданным фильтрам.
// Если ничего не подошло - пустой срез, не ошибка.
func (s *CatalogService) ListItems(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	key := filterKey(f)
	v, err, _ := s.sfg.Do("items:"+key, func() (any, error) {
		items, err := s.cache.GetItems(ctx, key)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warnw("catalog cache get failed", "key", key, "error", err)
		}

		items, err = s.repo.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		if err := s.cache.SetItems(ctx, key, items); err != nil {
			s.logger.Warnw("catalog cache set failed", "key", key, "error", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items := v.([]model.Item)
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// ListCategories возвращает различные категории товаров.
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	v, err, _ := s.sfg.Do("categories", func() (any, error) {
		cats, err := s.cache.GetCategories(ctx)
		if err == nil {
			return cats, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warnw("catalog cache get failed", "key", "categories", "error", err)
		}

		cats, err = s.repo.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		if err := s.cache.SetCategories(ctx, cats); err != nil {
			s.logger.Warnw("catalog cache set failed", "key", "categories", "error", err)
		}
		return cats, nil
	})
	if err != nil {
		return nil, err
	}
	cats := v.([]string)
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// filterKey - детерминированный ключ кеша для набора фильтров.
func filterKey(f repo.ItemFilter) string {
	q := url.Values{}
	if f.Category != nil {
		q.Set("category", *f.Category)
	}
	if f.MinPrice != nil {
		q.Set("min_price", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("max_price", f.MaxPrice.String())
	}
	if f.Search != nil {
		q.Set("search", *f.Search)
	}
	return q.Encode()
}
